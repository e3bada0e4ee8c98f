package ports

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	EnsureDirExists(path string) error
	MkdirAll(path string, accessMode AccessMode) error
	RemoveAll(path string) error
	FileExists(path string) (bool, error)
	Glob(pattern string) ([]string, error)
}
