// Package codes defines the exit statuses returned by the seedsplit binary
package codes

// Exit statuses returned by the binary
const (
	ErrorGeneric                int = 1
	ErrorInvalidArguments       int = 2
	ErrorCouldNotReadInput      int = 3
	ErrorMalformedShare         int = 4
	ErrorInvalidMnemonic        int = 5
	ErrorInconsistentShareSizes int = 6
	ErrorUnsupportedEntropySize int = 7
)
