package main

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"dasa.cc/shapeview/geom"
	"dasa.cc/shapeview/snapshot"
	"dasa.cc/shapeview/surface"

	"golang.org/x/image/math/f32"
)

type command struct {
	usage string
	help  string
	run   func(w io.Writer, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"list": {"list", "list shapes and their default tessellation", cmdList},
		"info": {"info <shape> [dx dy]", "print counts, bounds and seam gap of a tessellation", cmdInfo},
		"obj":  {"obj <path>", "load an OBJ file and print counts and bounds", cmdObj},
		"snap": {"snap <shape|file.obj> <out.png> [angle]", "write a wireframe PNG rotated angle degrees", cmdSnap},
		"help": {"help [command]", "print help", cmdHelp},
		"exit": {"exit", "leave the prompt", func(io.Writer, []string) error { return errExit }},
	}
}

func kindNames() []string {
	var ns []string
	for _, k := range surface.Kinds() {
		ns = append(ns, k.String())
	}
	return ns
}

func cmdHelp(w io.Writer, args []string) error {
	names := commandNames()
	if len(args) > 0 {
		names = args
	}
	sort.Strings(names)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		cmd, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command %q", name)
		}
		fmt.Fprintf(tw, "%s\t%s\n", cmd.usage, cmd.help)
	}
	return tw.Flush()
}

func cmdList(w io.Writer, args []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "shape\tdivisions\tvertices\tlines\ttriangles\n")
	for _, s := range surface.Defaults() {
		p, err := surface.NewParametric(s)
		if err != nil {
			return err
		}
		d := s.Interval().Divisions
		fmt.Fprintf(tw, "%v\t%vx%v\t%v\t%v\t%v\n", s.Kind(), d.X, d.Y, p.VertexCount(), p.LineIndexCount()/2, p.TriangleIndexCount()/3)
	}
	return tw.Flush()
}

// parametric returns the named shape tessellated with optional divisions.
func parametric(args []string) (*surface.Parametric, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing shape")
	}
	k, err := surface.ParseKind(args[0])
	if err != nil {
		if m := newCompleter(nil, map[string][]string{"": kindNames()}).Match(args[0], 0.3); len(m) > 0 {
			err = fmt.Errorf("%w, did you mean %q?", err, m[0])
		}
		return nil, err
	}
	s := surface.New(k)
	iv := s.Interval()
	switch len(args) {
	case 1:
	case 3:
		if iv.Divisions.X, err = strconv.Atoi(args[1]); err != nil {
			return nil, err
		}
		if iv.Divisions.Y, err = strconv.Atoi(args[2]); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("want shape and optionally two divisions, have %v arguments", len(args))
	}
	return surface.NewParametricIn(s, iv)
}

func cmdInfo(w io.Writer, args []string) error {
	p, err := parametric(args)
	if err != nil {
		return err
	}
	iv := p.Interval()
	fmt.Fprintf(w, "%v divisions %vx%v upper bound (%.4f, %.4f)\n",
		p.Shape().Kind(), iv.Divisions.X, iv.Divisions.Y, iv.UpperBound[0], iv.UpperBound[1])
	printCounts(w, p)
	fmt.Fprintf(w, "seam gap %.6f\n", seamGap(p))
	return nil
}

func cmdObj(w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("want one path, have %v arguments", len(args))
	}
	m, err := loadObj(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s faces %v\n", args[0], m.FaceCount())
	printCounts(w, m)
	return nil
}

func loadObj(name string) (*surface.Mesh, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := surface.LoadObj(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

func cmdSnap(w io.Writer, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("want source, output and optional angle, have %v arguments", len(args))
	}
	var (
		s   surface.Surface
		err error
	)
	if k, kerr := surface.ParseKind(args[0]); kerr == nil {
		s, err = surface.NewParametric(surface.New(k))
	} else {
		s, err = loadObj(args[0])
	}
	if err != nil {
		return err
	}

	var angle float64
	if len(args) == 3 {
		if angle, err = strconv.ParseFloat(args[2], 32); err != nil {
			return err
		}
	}
	tilt := geom.QuatAxisAngle(math.Pi/8, f32.Vec3{1, 0, 0})
	spin := geom.QuatAxisAngle(float32(angle*math.Pi/180), f32.Vec3{0, 1, 0})

	img, err := snapshot.Render(s, tilt.Rotated(spin), image.Pt(480, 360), snapshot.DefaultOptions())
	if err != nil {
		return err
	}
	if err := snapshot.Save(args[1], img); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s\n", args[1])
	return nil
}

func printCounts(w io.Writer, s surface.Surface) {
	fmt.Fprintf(w, "vertices %v line indices %v triangle indices %v\n",
		s.VertexCount(), s.LineIndexCount(), s.TriangleIndexCount())
	lo, hi := bounds(s.Vertices(0))
	fmt.Fprintf(w, "bounds %s %s\n", geom.String3(lo), geom.String3(hi))
}

func bounds(vs []float32) (lo, hi f32.Vec3) {
	if len(vs) < 3 {
		return lo, hi
	}
	copy(lo[:], vs[:3])
	copy(hi[:], vs[:3])
	for i := 3; i+2 < len(vs); i += 3 {
		for j := 0; j < 3; j++ {
			lo[j] = float32(math.Min(float64(lo[j]), float64(vs[i+j])))
			hi[j] = float32(math.Max(float64(hi[j]), float64(vs[i+j])))
		}
	}
	return lo, hi
}

// seamGap returns the largest distance between the first and last column
// of vertices. Closed shapes report zero.
func seamGap(p *surface.Parametric) float32 {
	div := p.Interval().Divisions
	vs := p.Vertices(0)
	var gap float32
	for j := 0; j < div.Y; j++ {
		a, b := 3*j*div.X, 3*(j*div.X+div.X-1)
		d := geom.Len3(geom.Sub3(f32.Vec3{vs[a], vs[a+1], vs[a+2]}, f32.Vec3{vs[b], vs[b+1], vs[b+2]}))
		if d > gap {
			gap = d
		}
	}
	return gap
}
