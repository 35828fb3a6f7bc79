// Command meshcli is a smoke-test harness for the mesh editor: it builds
// one of the canonical seed meshes from package meshbuild, runs a fixed
// sequence of edit operations against it, checks the result's invariants,
// and prints a meshio snapshot summary. It exists for manual and scripted
// sanity checks of the editor core, not as a production modeling tool.
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/sirupsen/logrus"

	"github.com/wrought3d/halfmesh/meshlog"
)

// args is what go-arg parses os.Args into. Only one subcommand may be
// active at a time, following the pattern go-arg's own subcommand support
// expects.
type args struct {
	Debug bool `arg:"--debug" help:"enable debug logging"`

	Extrude  *extrudeArgs  `arg:"subcommand:extrude" help:"build a cube and extrude its top face"`
	Bevel    *bevelArgs    `arg:"subcommand:bevel" help:"build a cube and bevel one edge"`
	Chamfer  *chamferArgs  `arg:"subcommand:chamfer" help:"build a cube and chamfer one vertex"`
	Validate *validateArgs `arg:"subcommand:validate" help:"build a seed mesh and check its invariants"`
}

type extrudeArgs struct {
	Height float64 `arg:"--height" default:"1.0" help:"extrude distance along the face normal"`
}

type bevelArgs struct {
	Amount float64 `arg:"--amount" default:"0.2" help:"bevel pull distance"`
}

type chamferArgs struct {
	Amount float64 `arg:"--amount" default:"0.3" help:"chamfer parameter t in [0,1]"`
}

type validateArgs struct {
	Shape string `arg:"--shape" default:"cube" help:"cube, tetrahedron, octahedron or plane"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var a args
	parser, err := arg.NewParser(arg.Config{}, &a)
	if err != nil {
		return err
	}
	if err := parser.Parse(os.Args[1:]); err != nil {
		if err == arg.ErrHelp {
			parser.WriteHelp(os.Stdout)
			return nil
		}
		return err
	}

	if a.Debug {
		meshlog.Std().SetLevel(logrus.DebugLevel)
	}

	switch {
	case a.Extrude != nil:
		return runExtrude(a.Extrude)
	case a.Bevel != nil:
		return runBevel(a.Bevel)
	case a.Chamfer != nil:
		return runChamfer(a.Chamfer)
	case a.Validate != nil:
		return runValidate(a.Validate)
	default:
		parser.WriteHelp(os.Stdout)
		return nil
	}
}
