package installer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProtoTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("syntax = \"proto3\";\n"), 0644))
	}
}

func TestCompileProtosWipesDestination(t *testing.T) {
	src := t.TempDir()
	writeProtoTree(t, src, "core/config.proto")

	dest := filepath.Join(t.TempDir(), "xray_rpc")
	sentinel := filepath.Join(dest, "stale_pb2.py")
	require.NoError(t, os.MkdirAll(dest, 0755))
	require.NoError(t, os.WriteFile(sentinel, []byte("left over from a failed run"), 0644))

	runner := &fakeRunner{}
	exitCode, err := compileProtos(runner, "python3", src, dest)
	require.NoError(t, err)
	require.Zero(t, exitCode)

	require.NoFileExists(t, sentinel, "stale generated files must not survive a recompile")
	require.DirExists(t, dest)
}

func TestCompileProtosInvokesCompilerOnce(t *testing.T) {
	src := t.TempDir()
	writeProtoTree(t, src,
		"core/config.proto",
		"app/stats/command/command.proto",
		"transport/internet/headers/http/config.proto",
	)

	dest := filepath.Join(t.TempDir(), "xray_rpc")
	runner := &fakeRunner{}
	_, err := compileProtos(runner, "python3", src, dest)
	require.NoError(t, err)

	require.Len(t, runner.calls, 1, "one compiler process for the whole tree")
	call := runner.calls[0]
	require.Equal(t, "python3", call[0])

	srcAbs, err := filepath.Abs(src)
	require.NoError(t, err)
	destAbs, err := filepath.Abs(dest)
	require.NoError(t, err)

	require.Equal(t, []string{
		"-m", "grpc_tools.protoc",
		"-I=" + srcAbs,
		"--python_out=" + destAbs,
		"--grpc_python_out=" + destAbs,
	}, call[1:6])

	// All discovered proto files are passed as positional arguments.
	require.ElementsMatch(t, []string{
		filepath.Join(srcAbs, "core", "config.proto"),
		filepath.Join(srcAbs, "app", "stats", "command", "command.proto"),
		filepath.Join(srcAbs, "transport", "internet", "headers", "http", "config.proto"),
	}, call[6:])
}

func TestCompileProtosReturnsCompilerExitCode(t *testing.T) {
	src := t.TempDir()
	writeProtoTree(t, src, "core/config.proto")

	runner := &fakeRunner{handle: func(name string, args []string) (int, string, error) {
		return 1, "", os.ErrInvalid
	}}

	exitCode, err := compileProtos(runner, "python3", src, filepath.Join(t.TempDir(), "xray_rpc"))
	require.NoError(t, err, "a compiler failure is reported through the exit code, not an error")
	require.Equal(t, 1, exitCode)
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeProtoTree(t, root, "a/x.proto", "a/b/y.proto")
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "notes.txt"), []byte("skip me"), 0644))

	files, err := findFilesByExtension(root, ".proto")
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		require.True(t, filepath.IsAbs(f))
	}
}
