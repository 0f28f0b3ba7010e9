package application

// Decompiled is the output of one pipeline run before it is stamped into a
// Result by the Session
type Decompiled struct {
	FileName string // display name: input file name or archive member path
	Code     string
	Size     int // input size in bytes
}

// Opened describes a successfully opened input file
type Opened struct {
	Name     string // base name of the input file
	Kind     InputKind
	Archive  []byte   // archive bytes, nil for a single class file
	Members  []string // class members in archive order
	Tree     *PathTree
	Selected string // member decompiled by default, empty for class files
	Output   *Decompiled
}
