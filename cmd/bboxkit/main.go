package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/menta2k/bboxkit"
	"github.com/menta2k/bboxkit/internal/config"
	"github.com/menta2k/bboxkit/internal/parse"
	"github.com/menta2k/bboxkit/pkg/geometry"
)

func main() {
	var op, aStr, bStr, pointStr, boxesStr, toStr, cfgPath string
	var factor, ratio float64
	var asJSON bool

	flag.StringVar(&op, "op", "info", "operation: info|convert|iou|intersect|expand|grow|contains|closest")
	flag.StringVar(&aStr, "a", "", "first box as x1,y1,x2,y2")
	flag.StringVar(&bStr, "b", "", "second box as x1,y1,x2,y2")
	flag.StringVar(&pointStr, "point", "", "point as x,y")
	flag.StringVar(&boxesStr, "boxes", "", "candidate boxes as x1,y1,x2,y2;x1,y1,x2,y2;...")
	flag.StringVar(&toStr, "to", "xywh", "target format for convert: xyxy|xywh|cxcywh")
	flag.Float64Var(&factor, "factor", 0, "expansion factor for expand (0 = config default)")
	flag.Float64Var(&ratio, "ratio", 0, "target aspect ratio for grow (0 = config default)")
	flag.StringVar(&cfgPath, "config", "", "path to JSON config file")
	flag.BoolVar(&asJSON, "json", false, "emit JSON output")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if factor == 0 {
		factor = cfg.Geometry.ExpandFactor
	}
	if ratio == 0 {
		ratio = cfg.Geometry.AspectRatio
	}
	if cfg.Output.JSON {
		asJSON = true
	}
	prec := cfg.Output.Precision

	kit := bboxkit.NewWithConfig(bboxkit.Config{
		ExpandFactor: factor,
		Tolerance:    cfg.Geometry.Tolerance,
	})

	requireBox := func(s, name string) geometry.Box {
		if s == "" {
			log.Fatalf("usage: %s -op %s requires -%s x1,y1,x2,y2", filepath.Base(os.Args[0]), op, name)
		}
		b, err := parse.Box(s)
		if err != nil {
			log.Fatalf("Invalid -%s: %v", name, err)
		}
		return b
	}
	requirePoint := func() geometry.Point {
		if pointStr == "" {
			log.Fatalf("usage: %s -op %s requires -point x,y", filepath.Base(os.Args[0]), op)
		}
		p, err := parse.Point(pointStr)
		if err != nil {
			log.Fatalf("Invalid -point: %v", err)
		}
		return p
	}
	emit := func(v interface{}) {
		js, err := json.MarshalIndent(v, "", cfg.Output.Indent)
		if err != nil {
			log.Fatalf("Failed to marshal output: %v", err)
		}
		fmt.Println(string(js))
	}

	switch op {
	case "info":
		a := requireBox(aStr, "a")
		info := kit.Describe(a)
		if asJSON {
			emit(info)
			return
		}
		fmt.Printf("box:    %s\n", parse.FormatBox(a, prec))
		fmt.Printf("size:   %.*fx%.*f\n", prec, info.Width, prec, info.Height)
		fmt.Printf("center: %s\n", parse.FormatPoint(info.Center, prec))
		fmt.Printf("area:   %.*f\n", prec, info.Area)
		fmt.Printf("ratio:  %.*f\n", prec, info.AspectRatio)

	case "convert":
		a := requireBox(aStr, "a")
		vals, err := bboxkit.Convert(a, bboxkit.Format(toStr))
		if err != nil {
			log.Fatalf("Convert failed: %v", err)
		}
		if asJSON {
			emit(map[string]interface{}{"format": toStr, "values": vals})
			return
		}
		fmt.Printf("%s: %g,%g,%g,%g\n", toStr, vals[0], vals[1], vals[2], vals[3])

	case "iou":
		a, b := requireBox(aStr, "a"), requireBox(bStr, "b")
		cmp := kit.Compare(a, b)
		if asJSON {
			emit(cmp)
			return
		}
		fmt.Printf("%.*f\n", prec, cmp.IoU)

	case "intersect":
		a, b := requireBox(aStr, "a"), requireBox(bStr, "b")
		cmp := kit.Compare(a, b)
		if asJSON {
			emit(cmp)
			return
		}
		if cmp.Intersection == nil {
			fmt.Println("disjoint")
			return
		}
		inter := *cmp.Intersection
		fmt.Printf("intersection: %g,%g,%g,%g (area %.*f)\n",
			inter.X1, inter.Y1, inter.X2, inter.Y2, prec, cmp.IntersectionArea)

	case "expand":
		a := requireBox(aStr, "a")
		expanded, err := kit.Expand(a)
		if err != nil {
			log.Fatalf("Expand failed: %v", err)
		}
		if asJSON {
			emit(expanded)
			return
		}
		fmt.Println(parse.FormatBox(expanded, prec))

	case "grow":
		a := requireBox(aStr, "a")
		grown, err := a.GrowToAspect(ratio)
		if err != nil {
			log.Fatalf("Grow failed: %v", err)
		}
		if asJSON {
			emit(grown)
			return
		}
		fmt.Println(parse.FormatBox(grown, prec))

	case "contains":
		a := requireBox(aStr, "a")
		p := requirePoint()
		contained := a.Contains(p)
		if asJSON {
			emit(map[string]bool{"contains": contained})
			return
		}
		fmt.Println(contained)

	case "closest":
		p := requirePoint()
		if boxesStr == "" {
			log.Fatalf("usage: %s -op closest requires -boxes x1,y1,x2,y2;...", filepath.Base(os.Args[0]))
		}
		boxes, err := parse.BoxList(boxesStr)
		if err != nil {
			log.Fatalf("Invalid -boxes: %v", err)
		}
		best, err := geometry.Closest(p, boxes)
		if err != nil {
			log.Fatalf("Closest failed: %v", err)
		}
		if asJSON {
			emit(best)
			return
		}
		fmt.Println(parse.FormatBox(best, prec))

	default:
		log.Fatalf("Unknown op: %s (use info|convert|iou|intersect|expand|grow|contains|closest)", op)
	}
}
