package catalog

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// HCL definitions use labelled blocks:
//
//	unit "Celsius" {
//	  aliases = ["C", "degC"]
//	}
//	offset "Celsius" "Kelvin" {
//	  offset = 273.15
//	}
//	scale "Kelvin" "Rankine" {
//	  factor = 1.8
//	}
type hclDefinition struct {
	Units   []hclUnit   `hcl:"unit,block"`
	Scales  []hclScale  `hcl:"scale,block"`
	Offsets []hclOffset `hcl:"offset,block"`
}

type hclUnit struct {
	Name         string   `hcl:"name,label"`
	Aliases      []string `hcl:"aliases,optional"`
	Intermediate bool     `hcl:"intermediate,optional"`
}

type hclScale struct {
	From   string  `hcl:"from,label"`
	To     string  `hcl:"to,label"`
	Factor float64 `hcl:"factor"`
}

type hclOffset struct {
	From   string  `hcl:"from,label"`
	To     string  `hcl:"to,label"`
	Offset float64 `hcl:"offset"`
}

func parseHCL(data []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var raw hclDefinition
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, diags
	}

	def := &Definition{}
	for _, u := range raw.Units {
		def.Units = append(def.Units, UnitSpec{
			Name:         u.Name,
			Aliases:      u.Aliases,
			Intermediate: u.Intermediate,
		})
	}
	for _, s := range raw.Scales {
		def.Scales = append(def.Scales, ScaleSpec{From: s.From, To: s.To, Factor: s.Factor})
	}
	for _, o := range raw.Offsets {
		def.Offsets = append(def.Offsets, OffsetSpec{From: o.From, To: o.To, Offset: o.Offset})
	}
	return def, nil
}
