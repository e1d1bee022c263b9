// Package assets embeds static data shipped with the server.
package assets

import "embed"

// WordsFile is the default word list inside FS, one word per line.
const WordsFile = "words.txt"

//go:embed words.txt
var FS embed.FS
