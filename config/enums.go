package config

//go:generate go tool go-enum --marshal --names --values -f=$GOFILE

// ProfileKind selects which built-in Indent Profile a configuration starts
// from before point overrides are applied.
// ENUM(usLetter, a4)
type ProfileKind int
