package script

// File is a parsed board script: an ordered list of statements.
// Statement order is meaningful — libraries and packages must be
// declared before they are referenced, and board collections keep
// declaration order in the emitted document.
type File struct {
	Statements []*Statement `@@*`
}

// Statement is one top-level declaration.
type Statement struct {
	Board   *BoardStmt   `  @@`
	Library *LibraryStmt `| @@`
	Package *PackageStmt `| @@`
	Place   *PlaceStmt   `| @@`
	Net     *NetStmt     `| @@`
	Plain   *PlainStmt   `| @@`
}

// BoardStmt sets the document header fields.
// Example: board "instr board" units mm grid 0.5 alt 0.1
type BoardStmt struct {
	Title   string   `"board" @String`
	Units   *string  `("units" @("mm" | "in"))?`
	Grid    *float64 `("grid" @Number)?`
	Alt     *float64 `("alt" @Number)?`
	Comment *string  `("comment" @String)?`
}

// LibraryStmt declares a package library.
// Example: library "conn" urn "urn:adsk.eagle:library:16378" version 2
type LibraryStmt struct {
	Name        string  `"library" @String`
	URN         string  `"urn" @String`
	Version     *int    `("version" @Number)?`
	Description *string `("description" @String)?`
}

// PackageStmt declares a footprint inside a previously declared
// library.
type PackageStmt struct {
	Name        string       `"package" @String`
	Library     string       `"in" @String`
	Description *string      `("description" @String)?`
	Pieces      []*PieceStmt `"{" @@* "}"`
}

// PieceStmt is one named piece within a package body.
type PieceStmt struct {
	Pad *PadStmt `  @@`
	Smd *SmdStmt `| @@`
	Via *ViaStmt `| @@`
}

// PadStmt declares a through-hole pad.
// Example: pad "1" at 0 0 diameter 1.8 drill 0.9 shape octagon
type PadStmt struct {
	Name     string   `"pad" @String`
	X        float64  `"at" @Number`
	Y        float64  `@Number`
	Diameter float64  `"diameter" @Number`
	Drill    *float64 `("drill" @Number)?`
	Shape    *string  `("shape" @Ident)?`
	Rot      *float64 `("rot" @Number)?`
}

// SmdStmt declares a surface-mount pad.
// Example: smd "2" at 1.27 0 size 0.6 1.2 layer 1
type SmdStmt struct {
	Name      string   `"smd" @String`
	X         float64  `"at" @Number`
	Y         float64  `@Number`
	DX        float64  `"size" @Number`
	DY        float64  `@Number`
	Layer     int      `"layer" @Number`
	Rot       *float64 `("rot" @Number)?`
	Roundness *int     `("roundness" @Number)?`
}

// ViaStmt declares a named via within a package.
// Example: via "V1" at 2 2 drill 0.6
type ViaStmt struct {
	Name   string  `"via" @String`
	X      float64 `"at" @Number`
	Y      float64 `@Number`
	Drill  float64 `"drill" @Number`
	Extent *string `("extent" @String)?`
}

// PlaceStmt places one element on the board.
// Example: place "E$1" package "SOLDERPAD" at 10 10 rot 90 value "X1" mirror
type PlaceStmt struct {
	Name    string   `"place" @String`
	Package string   `"package" @String`
	X       float64  `"at" @Number`
	Y       float64  `@Number`
	Rot     *float64 `("rot" @Number)?`
	Value   *string  `("value" @String)?`
	Mirror  bool     `@"mirror"?`
}

// NetStmt declares a signal over an ordered chain of contacts.
// Example: net "S$1" layer 1 : "E$1"."1" "E$2"."1"
type NetStmt struct {
	Name     string        `"net" @String`
	Layer    int           `"layer" @Number`
	Hidden   bool          `@"hidden"?`
	Contacts []*ContactRef `":" @@*`
}

// ContactRef names one (element, pad) endpoint.
type ContactRef struct {
	Element string `@String`
	Pad     string `"." @String`
}

// PlainStmt places a bare primitive outside any package.
type PlainStmt struct {
	Hole   *HoleStmt   `"plain" ( @@`
	Circle *CircleStmt `        | @@`
	Wire   *WireStmt   `        | @@`
	Text   *TextStmt   `        | @@ )`
}

// HoleStmt: plain hole at 5 5 drill 3.0
type HoleStmt struct {
	X     float64 `"hole" "at" @Number`
	Y     float64 `@Number`
	Drill float64 `"drill" @Number`
}

// CircleStmt: plain circle at 0 0 diameter 50 width 0.2 layer 20
type CircleStmt struct {
	X        float64  `"circle" "at" @Number`
	Y        float64  `@Number`
	Diameter float64  `"diameter" @Number`
	Width    *float64 `("width" @Number)?`
	Layer    *int     `("layer" @Number)?`
}

// WireStmt: plain wire from 0 0 to 1 1 width 0.2 layer 21 curve 30
type WireStmt struct {
	X1    float64  `"wire" "from" @Number`
	Y1    float64  `@Number`
	X2    float64  `"to" @Number`
	Y2    float64  `@Number`
	Width *float64 `("width" @Number)?`
	Layer *int     `("layer" @Number)?`
	Curve *float64 `("curve" @Number)?`
}

// TextStmt: plain text at 1 1 size 2 layer 21 "label" rot 90 mirror
type TextStmt struct {
	X       float64  `"text" "at" @Number`
	Y       float64  `@Number`
	Size    float64  `"size" @Number`
	Layer   int      `"layer" @Number`
	Content string   `@String`
	Rot     *float64 `("rot" @Number)?`
	Mirror  bool     `@"mirror"?`
}
