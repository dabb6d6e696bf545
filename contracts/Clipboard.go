package contracts

// Clipboard is the read/write buffer used by cut, copy and paste.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}
