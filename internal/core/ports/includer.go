package ports

import "io"

// Includer loads a resolved file on behalf of the host.
//
//go:generate mockgen -source=includer.go -destination=mocks/mock_includer.go -package=mocks
type Includer interface {
	// Include loads the file at path, writing anything it produces to w.
	Include(path string, w io.Writer) error
}
