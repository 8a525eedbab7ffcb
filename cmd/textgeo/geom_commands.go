package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/textgeo/geom"
)

func newRectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rect TOP_LEFT BOTTOM_RIGHT",
		Short: "Describe the rectangle with the given corners",
		Long: `Describe the rectangle with the given top-left and bottom-right corners.
Points are written as "x,y". Use "--" before the points when a coordinate is negative.`,
		Example: "  textgeo rect 0,10 10,0\n  textgeo rect -- -5,5 5,-5",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parsePoints(args)
			if err != nil {
				return err
			}
			r, err := geom.NewRect(points[0], points[1])
			if err != nil {
				return err
			}

			ctx.logger().Debug("rectangle built", slog.String("rect", r.String()))
			fmt.Fprintln(cmd.OutOrStdout(), describeRect(r))
			return nil
		},
	}
}

func newBBoxCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "bbox POINT [POINT...]",
		Short: "Describe the bounding box of the given points",
		Long: `Describe the smallest rectangle containing every point.
Points are written as "x,y". Use "--" before the points when a coordinate is negative.`,
		Example: "  textgeo bbox 3,4 0,9 5,1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parsePoints(args)
			if err != nil {
				return err
			}
			r, err := geom.BoundingBox(points...)
			if err != nil {
				return err
			}

			ctx.logger().Debug("bounding box built", slog.Int("points", len(points)), slog.String("rect", r.String()))
			fmt.Fprintln(cmd.OutOrStdout(), describeRect(r))
			return nil
		},
	}
}

// parsePoint parses a point written as "x,y".
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return geom.Pt(x, y), nil
}

func parsePoints(args []string) ([]geom.Point, error) {
	points := make([]geom.Point, 0, len(args))
	for _, arg := range args {
		p, err := parsePoint(arg)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func describeRect(r geom.Rect) string {
	rows := [][2]string{
		{"Top-left", r.TopLeft().String()},
		{"Bottom-right", r.BottomRight().String()},
		{"Width", formatFloat(r.Width())},
		{"Height", formatFloat(r.Height())},
		{"Area", formatFloat(r.Area())},
		{"Perimeter", formatFloat(r.Perimeter())},
		{"Diagonal", formatFloat(r.Diagonal())},
		{"Center", r.Center().String()},
	}
	return renderProperties(rows)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
