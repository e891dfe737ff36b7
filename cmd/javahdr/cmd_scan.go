package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/brask/javahdr/java"
	"github.com/brask/javahdr/java/parser"
)

func newScanCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Parse every .java file under a directory and report failures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0], timeout)
		},
	}
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Second, "timeout per file")
	return cmd
}

func runScan(root string, timeout time.Duration) error {
	var files []string
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() && filepath.Ext(p) == ".java" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return err
	}

	var failures int
	for _, f := range files {
		if err := scanFile(f, timeout); err != nil {
			failures++
			fmt.Printf("[FAIL] %s: %v\n", f, err)
			continue
		}
		fmt.Printf("[OK]   %s\n", f)
	}

	fmt.Printf("\nparsed %d files, %d failed\n", len(files), failures)
	return nil
}

func scanFile(path string, timeout time.Duration) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := parser.Parse(path, content)
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func printOutline(cu *java.CompUnit) {
	if cu.Package != nil {
		fmt.Println("package", joinDots(cu.Package.Name))
	}
	for _, im := range cu.Imports {
		fmt.Print("import ")
		if im.IsStatic {
			fmt.Print("static ")
		}
		fmt.Print(joinDots(im.Name))
		if im.IsWild {
			fmt.Print(".*")
		}
		fmt.Println()
	}
	for _, d := range cu.Decls {
		printTyDecl(d, 0)
	}
}

func printTyDecl(d *java.TyDecl, indent int) {
	pad(indent)
	fmt.Printf("%s %s\n", d.Kind, d.Name)
	for _, m := range d.Members {
		switch v := m.(type) {
		case *java.VarDecl:
			pad(indent + 1)
			fmt.Printf("field %s\n", v.Name)
		case *java.MethDecl:
			pad(indent + 1)
			if v.IsConstructor() {
				fmt.Printf("constructor %s\n", v.Name)
			} else {
				fmt.Printf("method %s\n", v.Name)
			}
		case *java.TyDecl:
			printTyDecl(v, indent+1)
		}
	}
}

func pad(indent int) {
	for i := 0; i < indent; i++ {
		fmt.Print("  ")
	}
}

func joinDots(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}
