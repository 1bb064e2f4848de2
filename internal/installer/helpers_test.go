package installer

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRunner records every external tool invocation and delegates behavior
// to an optional handler, standing in for grpc_tools.protoc and poetry.
type fakeRunner struct {
	calls  [][]string
	handle func(name string, args []string) (int, string, error)
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (int, string, error) {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)
	if f.handle != nil {
		return f.handle(name, args)
	}
	return 0, "", nil
}

// buildZip assembles an in-memory zip archive from name -> content pairs.
func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		fw, err := w.Create(name)
		require.NoError(t, err, "failed to add %s to test archive", name)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}
