package recent

// Project is one resolved recent project.
//
// The field set and the ID format are a contract with the launcher
// integration; change them only together with the consumer.
type Project struct {
	ID      string `json:"id"`      // stable across runs, unique across products and paths
	Name    string `json:"name"`    // from .idea/.name, else the recorded path's last component
	Path    string `json:"path"`    // as recorded, home shorthand preserved
	AbsPath string `json:"abspath"` // home-expanded
}
