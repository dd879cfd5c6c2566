package symbols

// Kind is the sort of type a declaration introduces
type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindTrait     Kind = "trait"
	KindEnum      Kind = "enum"
)

// Declaration is a named type found in a source file
type Declaration struct {
	// Name is fully qualified, namespace segments separated by a backslash
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind" yaml:"kind"`
	File string `json:"file" yaml:"file"`
}

// Extractor finds the declarations in one source file
type Extractor interface {
	Extract(path string, src []byte) ([]Declaration, error)
}

// ExtractorFunc adapts a function to the Extractor interface
type ExtractorFunc func(path string, src []byte) ([]Declaration, error)

// Extract calls f(path, src)
func (f ExtractorFunc) Extract(path string, src []byte) ([]Declaration, error) {
	return f(path, src)
}

func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + `\` + name
}
