// Command puzdump loads an Across Lite puzzle file (binary or text,
// auto-detected), verifies its checksums, and prints its fields to
// stdout separated by a fixed marker.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/exp/mmap"

	"github.com/kobolabs/puz/puz"
)

// fieldSeparator is the literal marker each dumped field is joined with.
const fieldSeparator = "myuniquelibpuzseparator"

var rootCmd = &cobra.Command{
	Use:   "puzdump <file.puz>",
	Short: "Dump the title, author, notes, dimensions, grids, and clues of a puzzle file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]

	r, err := mmap.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	p, err := puz.Load(data)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	if mismatches := p.ChecksumsCheck(); mismatches > 0 {
		return fmt.Errorf("%s: %d checksum mismatch(es)", path, mismatches)
	}

	fields := []string{
		puz.DisplayString(p.Title),
		puz.DisplayString(p.Author),
		puz.DisplayString(p.Notes),
		strconv.Itoa(int(p.Width)),
		strconv.Itoa(int(p.Height)),
		string(p.Grid),
		string(p.Solution),
	}
	for _, c := range p.Clues {
		fields = append(fields, puz.DisplayString(c))
	}

	fmt.Println(strings.Join(fields, fieldSeparator))
	return nil
}
