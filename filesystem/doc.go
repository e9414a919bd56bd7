// Package filesystem provides the filesystem primitives used by perch
// prompts: existence probes, path creation and filtered directory scans.
//
// # Overview
//
// The prompt resolver never touches os directly. It talks to an FS, so tests
// can inject failures and callers can sandbox prompts:
//   - Existence probes (IsFile, IsDir) for file and folder prompts
//   - Create operations (CreateFileOp, CreateDirOp) for auto-create
//   - Filtered scans (Scan) for the file picker
//
// # Usage
//
// Scan a directory with extension filters:
//
//	files, err := filesystem.Scan(filesystem.OS{}, "./data", []string{"csv", ".txt", "*.json"})
//	for _, f := range files {
//	    fmt.Println(f)
//	}
//
// Create a file and its parents:
//
//	op := &filesystem.CreateFileOp{FS: filesystem.OS{}, Path: "notes/today.txt"}
//	if err := op.Execute(); err != nil {
//	    return err
//	}
//	fmt.Println("Created", op.Description())
package filesystem
