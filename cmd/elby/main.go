package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"strings"

	"github.com/LukeBoehler/elby"
	"github.com/LukeBoehler/elby/cui"
	tileimage "github.com/LukeBoehler/elby/image"
	"github.com/LukeBoehler/elby/tile"
	"github.com/urfave/cli/v2"
)

const defaultScale = 24

// One rune per shade, from white to black.
var shadeRunes = [...]rune{' ', '░', '▒', '█'}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "elby"
	app.Usage = "Game Boy tile editor"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "edit",
			Usage:       "Edit a tile in the terminal",
			Description: "Opens the editor, optionally seeded with tile hex, and prints the result on exit.",
			ArgsUsage:   "[HEX]",
			Action: func(c *cli.Context) error {
				logger := log.New(io.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				e := elby.New(logger)
				if c.NArg() > 0 {
					if err := e.SetHex(strings.Join(c.Args().Slice(), " ")); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				if err := cui.Run(e); err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Println(e.Hex())

				return nil
			},
		},
		{
			Name:        "encode",
			Usage:       "Encode an image file as tile hex",
			Description: "The image must be 8x8 pixels; colors are matched to the four shades.",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				m, _, err := image.Decode(f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				g, err := tileimage.FromImage(m)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Println(tile.Encode(g))

				return nil
			},
		},
		{
			Name:        "decode",
			Usage:       "Decode tile hex and render it",
			Description: "Prints the tile to the terminal, or writes a PNG with --out.",
			ArgsUsage:   "HEX",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Usage:   "write a PNG to `FILE`",
				},
				&cli.IntFlag{
					Name:    "scale",
					Aliases: []string{"s"},
					EnvVars: []string{"ELBY_SCALE"},
					Value:   defaultScale,
					Usage:   "PNG size of one tile pixel",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, err := tile.Decode(strings.Join(c.Args().Slice(), " "))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if out := c.String("out"); out != "" {
					m, err := tileimage.Render(&g, c.Int("scale"))
					if err != nil {
						return cli.NewExitError(err, 1)
					}

					f, err := os.Create(out)
					if err != nil {
						return cli.NewExitError(err, 1)
					}

					if err := png.Encode(f, m); err != nil {
						f.Close()
						return cli.NewExitError(err, 1)
					}

					if err := f.Close(); err != nil {
						return cli.NewExitError(err, 1)
					}

					return nil
				}

				b := g.Bounds()
				var sb strings.Builder
				for y := b.Min.Y; y < b.Max.Y; y++ {
					for x := b.Min.X; x < b.Max.X; x++ {
						r := shadeRunes[g.ShadeAt(x, y)]
						sb.WriteRune(r)
						sb.WriteRune(r)
					}
					sb.WriteByte('\n')
				}
				fmt.Print(sb.String())

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
