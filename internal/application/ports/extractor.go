package ports

type TextExtractor interface {
	Supported(filename string) bool
	Text(filename string, data []byte) (string, error)
}
