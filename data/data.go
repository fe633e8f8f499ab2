package data

import "embed"

//go:embed sql/notes
var NotesMigrations embed.FS
