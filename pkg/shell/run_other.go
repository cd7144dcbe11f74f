//go:build !windows

package shell

func Run(*Shell, Options) error {
	return ErrUnsupported
}
