package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bluesky-social/merkletree/digest"
	"github.com/bluesky-social/merkletree/intsource"
	"github.com/bluesky-social/merkletree/mtree"

	"github.com/urfave/cli/v2"
)

var cmdRoot = &cli.Command{
	Name:      "root",
	Usage:     "print the root digest of the tree built from an integer file",
	ArgsUsage: "<path>",
	Action:    runRoot,
}

var cmdPrint = &cli.Command{
	Name:      "print",
	Usage:     "print every node of the tree",
	ArgsUsage: "<path>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format: levels or tree",
			Value: "levels",
		},
		&cli.BoolFlag{
			Name:  "full",
			Usage: "show full digests in tree format",
		},
	},
	Action: runPrint,
}

var cmdVerify = &cli.Command{
	Name:      "verify",
	Usage:     "rebuild the tree and check the root digest",
	ArgsUsage: "<path>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "expect",
			Usage: "expected root digest (if not set, the tree is checked against itself)",
		},
	},
	Action: runVerify,
}

var cmdInsert = &cli.Command{
	Name:      "insert",
	Usage:     "append values to the data and print the root before and after",
	ArgsUsage: "<path> <value>...",
	Action:    runInsert,
}

var cmdOverwrite = &cli.Command{
	Name:      "overwrite",
	Usage:     "replace the first occurrence of a value and print the new root",
	ArgsUsage: "<path> <original> <new>",
	Action:    runOverwrite,
}

var cmdHashers = &cli.Command{
	Name:   "hashers",
	Usage:  "list available digest functions",
	Action: runHashers,
}

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "walk through build, insert, overwrite and verify on built-in data",
	Action: runDemo,
}

func treeConfig(cctx *cli.Context) (mtree.Config, error) {
	fanout := cctx.Int("fanout")
	if err := mtree.ValidateFanout(fanout); err != nil {
		return mtree.Config{}, err
	}
	h, err := digest.ByName(cctx.String("hash"))
	if err != nil {
		return mtree.Config{}, err
	}
	return mtree.Config{
		Fanout:        fanout,
		Hasher:        h,
		Logger:        slog.Default(),
		LeafCacheSize: cctx.Int("leaf-cache"),
	}, nil
}

func loadTree(cctx *cli.Context) (*mtree.Tree, error) {
	p := cctx.Args().First()
	if p == "" {
		return nil, fmt.Errorf("need to provide path to integer file")
	}
	cfg, err := treeConfig(cctx)
	if err != nil {
		return nil, err
	}
	data, err := intsource.ReadFileErr(p)
	if err != nil {
		// an unreadable source is treated as an empty sequence
		slog.Warn("could not read integer file", "path", p, "err", err)
	}
	slog.Debug("loaded data", "path", p, "count", len(data))
	return mtree.NewFromData(data, cfg.Options()...), nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}

func runRoot(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, tree.RootString())
	return nil
}

func runPrint(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	switch cctx.String("format") {
	case "levels":
		writeLevels(w, tree.Root())
	case "tree":
		fmt.Fprintln(w, renderTree(tree.Root(), cctx.Bool("full")))
	default:
		return fmt.Errorf("unknown print format: %s", cctx.String("format"))
	}
	return nil
}

func runVerify(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	if cctx.IsSet("expect") {
		if err := tree.CheckRoot(digest.Digest(cctx.String("expect"))); err != nil {
			fmt.Fprintln(w, "False")
			return err
		}
		fmt.Fprintln(w, "True")
		return nil
	}
	if !tree.Verify() {
		fmt.Fprintln(w, "False")
		return mtree.ErrRootMismatch
	}
	fmt.Fprintln(w, "True")
	return nil
}

func runInsert(cctx *cli.Context) error {
	if cctx.Args().Len() < 2 {
		return fmt.Errorf("need to provide path and at least one value")
	}
	vals, err := parseInts(cctx.Args().Tail())
	if err != nil {
		return err
	}
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	fmt.Fprintf(w, "before: %s\n", tree.RootString())
	for _, v := range vals {
		tree.Insert(v)
	}
	fmt.Fprintf(w, "after: %s\n", tree.RootString())
	return nil
}

func runOverwrite(cctx *cli.Context) error {
	if cctx.Args().Len() != 3 {
		return fmt.Errorf("need to provide path, original value, and new value")
	}
	vals, err := parseInts(cctx.Args().Tail())
	if err != nil {
		return err
	}
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	replaced := tree.Overwrite(vals[0], vals[1])
	if !replaced {
		slog.Info("value not found, tree unchanged", "value", vals[0])
	}
	w := cctx.App.Writer
	fmt.Fprintf(w, "replaced: %t\n", replaced)
	fmt.Fprintf(w, "root: %s\n", tree.RootString())
	return nil
}

func runHashers(cctx *cli.Context) error {
	def := digest.Default().Name()
	for _, name := range digest.Names() {
		if name == def {
			fmt.Fprintf(cctx.App.Writer, "%s (default)\n", name)
			continue
		}
		fmt.Fprintln(cctx.App.Writer, name)
	}
	return nil
}

func runDemo(cctx *cli.Context) error {
	cfg, err := treeConfig(cctx)
	if err != nil {
		return err
	}
	w := cctx.App.Writer

	tree := mtree.NewFromData([]int{1, 2, 3, 4, 5}, cfg.Options()...)
	fmt.Fprintf(w, "data: %v\n", tree.Data())
	fmt.Fprintf(w, "root: %s\n", tree.RootString())
	writeLevels(w, tree.Root())

	tree.Insert(6)
	fmt.Fprintf(w, "insert 6, root: %s\n", tree.RootString())

	tree.Overwrite(3, 30)
	fmt.Fprintf(w, "overwrite 3 -> 30, root: %s\n", tree.RootString())

	fmt.Fprintf(w, "verify: %t\n", tree.Verify())
	return nil
}
