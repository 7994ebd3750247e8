// Package export writes building plans as YAML documents and reads them
// back. A written document is the plan followed by a summary block; the
// summary is informational and ignored when reading.
package export

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/hearthplan/internal/plan"
)

// ErrEmptyDocument is returned when a YAML input holds no plan.
var ErrEmptyDocument = errors.New("export: document has no plan")

// Options control the comment header of a written plan.
type Options struct {
	// Fingerprint adds the plan's fingerprint to the header.
	Fingerprint bool
}

// document is the on-disk layout: the plan fields, then the summary.
type document struct {
	plan.BuildingPlan `yaml:",inline"`
	Summary           yaml.Node `yaml:"summary"`
}

// Write encodes p to w with a comment header.
func Write(w io.Writer, p plan.BuildingPlan, opts Options) error {
	fmt.Fprintf(w, "# Building plan %s\n", p.ID)
	fmt.Fprintf(w, "# %s / %s, seed %d\n", p.Metadata.BuildingType, p.Metadata.SocialClass, p.Metadata.Seed)
	fmt.Fprintf(w, "# Floors: %d, rooms: %d, issues: %d\n", len(p.Floors), len(p.Rooms()), len(p.Issues))
	if opts.Fingerprint {
		fp, err := Fingerprint(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "# Fingerprint: %s\n", fp)
	}
	fmt.Fprintln(w)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{BuildingPlan: p, Summary: summary(p)}); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// WriteFile writes p to path.
func WriteFile(path string, p plan.BuildingPlan, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()
	if err := Write(f, p, opts); err != nil {
		return err
	}
	return f.Close()
}

// Read decodes a plan written by Write.
func Read(r io.Reader) (plan.BuildingPlan, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return plan.BuildingPlan{}, ErrEmptyDocument
		}
		return plan.BuildingPlan{}, fmt.Errorf("failed to decode YAML: %w", err)
	}
	if doc.ID == "" && len(doc.Floors) == 0 {
		return plan.BuildingPlan{}, ErrEmptyDocument
	}
	return doc.BuildingPlan, nil
}

// ReadFile reads a plan from path.
func ReadFile(path string) (plan.BuildingPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return plan.BuildingPlan{}, fmt.Errorf("failed to open plan: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Fingerprint returns the hex BLAKE2b-256 digest of the plan's canonical
// encoding. Equal plans have equal fingerprints, and a plan read back from
// its own export keeps its fingerprint.
func Fingerprint(p plan.BuildingPlan) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return "", fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	sum := blake2b.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

// summary counts rooms by type and issues by level, keys sorted.
func summary(p plan.BuildingPlan) yaml.Node {
	rooms := make(map[string]int)
	for _, r := range p.Rooms() {
		rooms[r.Function.String()]++
	}
	issues := make(map[string]int)
	for _, i := range p.Issues {
		issues[string(i.Level)]++
	}

	node := yaml.Node{Kind: yaml.MappingNode}
	addCountField(&node, "rooms_by_type", rooms)
	addCountField(&node, "issues_by_level", issues)
	addIntField(&node, "hallways", hallwayCount(p))
	addIntField(&node, "furnishings", itemCount(p))
	return node
}

func hallwayCount(p plan.BuildingPlan) int {
	n := 0
	for _, f := range p.Floors {
		n += len(f.Hallways)
	}
	return n
}

func itemCount(p plan.BuildingPlan) int {
	n := 0
	for _, r := range p.Rooms() {
		n += len(r.Items())
	}
	return n
}

func addIntField(node *yaml.Node, key string, v int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)},
	)
}

func addCountField(node *yaml.Node, key string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mapNode := yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		addIntField(&mapNode, k, counts[k])
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&mapNode,
	)
}
