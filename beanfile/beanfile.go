// Package beanfile loads bean definitions from a YAML file. It is a
// definition producer: it emits wirebox.Definition values and leaves
// registration, validation, and resolution to the container core.
//
// File layout:
//
//	beans:
//	  - id: dao
//	    type: demo.DatabaseDao
//	  - id: metier
//	    type: demo.MetierImpl
//	    scope: singleton
//	    strategy: constructor
//	    constructor_args:
//	      - ref: dao
//	  - id: report
//	    type: demo.Report
//	    strategy: setter
//	    properties:
//	      - name: title
//	        value: monthly
package beanfile

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/centraunit/wirebox"
)

type file struct {
	Beans []bean `mapstructure:"beans"`
}

type bean struct {
	ID              string     `mapstructure:"id"`
	Type            string     `mapstructure:"type"`
	Scope           string     `mapstructure:"scope"`
	Strategy        string     `mapstructure:"strategy"`
	ConstructorArgs []arg      `mapstructure:"constructor_args"`
	Properties      []property `mapstructure:"properties"`
}

type arg struct {
	Ref   string `mapstructure:"ref"`
	Value any    `mapstructure:"value"`
}

type property struct {
	Name  string `mapstructure:"name"`
	Ref   string `mapstructure:"ref"`
	Value any    `mapstructure:"value"`
}

// Load reads the bean file at path and maps it to Definitions.
// Constructor arguments are positional in file order. Shape errors
// beyond basic mapping (unknown scopes, mixed strategies, duplicate
// ids) surface later, when the Definitions are registered.
func Load(path string) ([]wirebox.Definition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read bean file: %w", err)
	}

	var f file
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decode bean file: %w", err)
	}

	defs := make([]wirebox.Definition, 0, len(f.Beans))
	for _, b := range f.Beans {
		def, err := b.toDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (b bean) toDefinition() (wirebox.Definition, error) {
	if len(b.ConstructorArgs) > 0 && len(b.Properties) > 0 {
		return wirebox.Definition{}, fmt.Errorf("bean %q declares both constructor_args and properties", b.ID)
	}

	def := wirebox.Definition{
		ID:       b.ID,
		TypeRef:  b.Type,
		Scope:    wirebox.Scope(b.Scope),
		Strategy: wirebox.InjectionStrategy(b.Strategy),
	}

	for i, a := range b.ConstructorArgs {
		if a.Ref != "" {
			def.Dependencies = append(def.Dependencies, wirebox.RefArg(i, a.Ref))
		} else {
			def.Dependencies = append(def.Dependencies, wirebox.LiteralArg(i, a.Value))
		}
	}
	for _, p := range b.Properties {
		if p.Ref != "" {
			def.Dependencies = append(def.Dependencies, wirebox.RefProperty(p.Name, p.Ref))
		} else {
			def.Dependencies = append(def.Dependencies, wirebox.LiteralProperty(p.Name, p.Value))
		}
	}
	return def, nil
}

// Register loads the bean file at path and registers every Definition
// into registry.
func Register(registry *wirebox.Registry, path string) error {
	defs, err := Load(path)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}
