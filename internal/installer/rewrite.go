package installer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"xray-rpc-sync/internal/logger"
)

// rewriteImports repairs the generated bindings under treeRoot. The gRPC
// compiler emits sibling-relative imports ("from foo.bar import baz_pb2")
// that no longer resolve once the tree is relocated into a namespaced
// package, so every such statement gets the package root prefixed
// ("from xray_rpc.foo.bar import baz_pb2").
//
// The pattern tolerates an already-present prefix, stripping and re-adding
// it, so running the rewrite twice never double-prefixes.
func rewriteImports(treeRoot, pkg string) error {
	re := regexp.MustCompile(`from\s+(?:` + regexp.QuoteMeta(pkg) + `\.)?([\w.]+)\s+import\s+(\w*pb2\w*)`)
	replacement := []byte("from " + pkg + ".$1 import $2")

	return filepath.WalkDir(treeRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".py" {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		code, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read generated file %s: %w", path, err)
		}

		rewritten := re.ReplaceAll(code, replacement)
		if err := os.WriteFile(path, rewritten, info.Mode()); err != nil {
			return fmt.Errorf("failed to rewrite %s: %w", path, err)
		}

		logger.Debug("[DEBUG] Rewrote imports in %s\n", path)
		return nil
	})
}
