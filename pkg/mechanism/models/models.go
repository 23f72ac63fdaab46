// Package models validates and parses the optional aerosol model section of
// a mechanism document.
package models

import (
	"fmt"
	"sort"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Entry is the validate/parse pair registered for one model type tag.
type Entry struct {
	Tag      string
	validate func(tag string, obj document.Node, phases []types.Phase) *mechErrors.ErrorList
	parse    func(obj document.Node) types.Model
}

// Validate checks obj against the model type.
func (e Entry) Validate(obj document.Node, phases []types.Phase) *mechErrors.ErrorList {
	return e.validate(e.Tag, obj, phases)
}

// Parse extracts the typed model. obj must already have passed Validate.
func (e Entry) Parse(obj document.Node) types.Model {
	return e.parse(obj)
}

// Table maps model type tags to entries.
type Table struct {
	entries map[string]Entry
}

// NewTable builds the model table.
func NewTable() *Table {
	return &Table{entries: map[string]Entry{
		types.ModelTypeGasPhase: {Tag: types.ModelTypeGasPhase, validate: validateGas, parse: parseGas},
		types.ModelTypeModal:    {Tag: types.ModelTypeModal, validate: validateModal, parse: parseModal},
	}}
}

// Lookup returns the entry for tag.
func (t *Table) Lookup(tag string) (Entry, bool) {
	e, ok := t.entries[tag]
	return e, ok
}

// Tags returns every registered tag, sorted.
func (t *Table) Tags() []string {
	tags := make([]string, 0, len(t.entries))
	for tag := range t.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ValidateAll validates every model of list. A model with a missing or
// unknown type is reported and skipped.
func (t *Table) ValidateAll(list document.Node, phases []types.Phase) *mechErrors.ErrorList {
	errs := mechErrors.NewErrorList()
	for _, obj := range list.Items() {
		if !obj.Has(schema.KeyType) {
			errs.AddError(mechErrors.KindRequiredKeyNotFound, "Missing 'type' object in model.", obj.Location())
			continue
		}
		typeNode := obj.Get(schema.KeyType)
		e, ok := t.Lookup(typeNode.Str())
		if !ok {
			errs.AddErrorWithSuggestion(mechErrors.KindUnknownType,
				fmt.Sprintf("Unknown model type '%s' found.", typeNode.Str()),
				typeNode.Location(),
				mechErrors.SuggestType(typeNode.Str(), t.Tags()))
			continue
		}
		errs.Merge(e.Validate(obj, phases))
	}
	return errs
}

// ParseAll parses every model of list. Unknown types are skipped.
func (t *Table) ParseAll(list document.Node) types.Models {
	var ms types.Models
	for _, obj := range list.Items() {
		if e, ok := t.Lookup(obj.Get(schema.KeyType).Str()); ok {
			ms.Set(e.Parse(obj))
		}
	}
	return ms
}

func validateGas(tag string, obj document.Node, phases []types.Phase) *mechErrors.ErrorList {
	errs := schema.Validate(obj, []string{schema.KeyType, schema.KeyPhase}, []string{schema.KeyName})
	if errs.HasErrors() {
		return errs
	}
	schema.CheckPhaseExists(obj, schema.KeyPhase, phases, errs, schema.ModelOwner(tag))
	return errs
}

func parseGas(obj document.Node) types.Model {
	return types.GasModel{
		Name:              obj.Get(schema.KeyName).Str(),
		Type:              obj.Get(schema.KeyType).Str(),
		Phase:             obj.Get(schema.KeyPhase).Str(),
		UnknownProperties: schema.Comments(obj),
	}
}

var modeRequired = []string{
	schema.KeyName, schema.KeyGeometricMeanDiameter, schema.KeyGeometricStandardDeviation, schema.KeyPhase,
}

func validateModal(tag string, obj document.Node, phases []types.Phase) *mechErrors.ErrorList {
	errs := schema.Validate(obj, []string{schema.KeyType, schema.KeyModes}, []string{schema.KeyName})
	if errs.HasErrors() {
		return errs
	}

	modes := obj.Get(schema.KeyModes)
	if !modes.IsSequence() {
		errs.AddError(mechErrors.KindInvalidType,
			fmt.Sprintf("Expected 'modes' to be a sequence, but found a different type in the '%s' model.", tag),
			modes.Location())
		return errs
	}

	owner := schema.ModelOwner(tag)
	for _, mode := range modes.Items() {
		modeErrs := schema.Validate(mode, modeRequired, nil)
		errs.Merge(modeErrs)
		if modeErrs.HasErrors() {
			continue
		}
		for _, key := range []string{schema.KeyGeometricMeanDiameter, schema.KeyGeometricStandardDeviation} {
			if _, err := mode.Get(key).Float(); err != nil {
				errs.AddError(mechErrors.KindInvalidType,
					fmt.Sprintf("Expected '%s' to be a number in %s.", key, owner),
					mode.Get(key).Location())
			}
		}
		schema.CheckPhaseExists(mode, schema.KeyPhase, phases, errs, owner)
	}
	return errs
}

func parseModal(obj document.Node) types.Model {
	m := types.ModalModel{
		Name:              obj.Get(schema.KeyName).Str(),
		Type:              obj.Get(schema.KeyType).Str(),
		UnknownProperties: schema.Comments(obj),
	}
	for _, mode := range obj.Get(schema.KeyModes).Items() {
		m.Modes = append(m.Modes, types.Mode{
			Name:                       mode.Get(schema.KeyName).Str(),
			GeometricMeanDiameter:      mode.Get(schema.KeyGeometricMeanDiameter).MustFloat(0),
			GeometricStandardDeviation: mode.Get(schema.KeyGeometricStandardDeviation).MustFloat(0),
			Phase:                      mode.Get(schema.KeyPhase).Str(),
			UnknownProperties:          schema.Comments(mode),
		})
	}
	return m
}
