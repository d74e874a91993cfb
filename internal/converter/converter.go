// Package converter lists customer prefixes and bulk-assigns a gender to the
// customers carrying a given prefix.
package converter

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NikitaCOEUR/prefixgender/internal/config"
	"github.com/NikitaCOEUR/prefixgender/internal/customer"
	perrors "github.com/NikitaCOEUR/prefixgender/internal/errors"
	"github.com/NikitaCOEUR/prefixgender/internal/logger"
	"github.com/NikitaCOEUR/prefixgender/internal/prompt"
	"github.com/NikitaCOEUR/prefixgender/internal/report"
	"github.com/NikitaCOEUR/prefixgender/internal/timing"
)

// Command names understood by Run
const (
	CommandList    = "list"
	CommandConvert = "convert"
	CommandHelp    = "help"
)

// confirmQuestion is asked before any record is touched
const confirmQuestion = "OK to proceed? [y/N] "

// Deps are the collaborators a Controller works with
type Deps struct {
	Store      customer.Store
	Attributes customer.AttributeSource
	Confirmer  prompt.Confirmer
	Out        io.Writer
	Log        *logger.Logger

	// EntityType and GenderAttribute locate the gender attribute; they
	// default to customer/gender
	EntityType      string
	GenderAttribute string
	// VerboseFormat is the template for per-customer progress lines
	VerboseFormat string
}

// Controller dispatches the list and convert commands
type Controller struct {
	store      customer.Store
	attributes customer.AttributeSource
	confirm    prompt.Confirmer
	report     *report.Writer
	log        *logger.Logger
	entityType string
	attribute  string
}

// New builds a Controller. Store and Attributes are required.
func New(deps Deps) (*Controller, error) {
	if deps.Store == nil || deps.Attributes == nil {
		return nil, fmt.Errorf("converter: store and attribute source are required")
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Confirmer == nil {
		deps.Confirmer = &prompt.Line{In: os.Stdin, Out: deps.Out}
	}
	if deps.Log == nil {
		deps.Log = logger.Discard()
	}
	if deps.EntityType == "" {
		deps.EntityType = customer.EntityType
	}
	if deps.GenderAttribute == "" {
		deps.GenderAttribute = customer.GenderAttribute
	}
	if deps.VerboseFormat == "" {
		deps.VerboseFormat = config.DefaultVerboseFormat
	}

	w, err := report.New(deps.Out, deps.VerboseFormat)
	if err != nil {
		return nil, perrors.NewConfigurationError("verbose_format", "invalid verbose format", err)
	}

	return &Controller{
		store:      deps.Store,
		attributes: deps.Attributes,
		confirm:    deps.Confirmer,
		report:     w,
		log:        deps.Log,
		entityType: deps.EntityType,
		attribute:  deps.GenderAttribute,
	}, nil
}

// Command is a parsed invocation
type Command struct {
	Name    string
	Gender  string
	Prefix  string
	Force   bool
	Verbose bool
}

// Run executes cmd. Usage problems and a declined confirmation print a
// message and return nil; only configuration, store and persistence
// failures are returned as errors.
func (c *Controller) Run(ctx context.Context, cmd Command) error {
	switch cmd.Name {
	case CommandList:
		return c.List(ctx)
	case CommandConvert:
		if cmd.Gender == "" || cmd.Prefix == "" {
			c.report.MissingArguments()
			return nil
		}
		sex, ok := customer.ParseSex(cmd.Gender)
		if !ok {
			c.report.UnknownGender(cmd.Gender)
			return nil
		}
		ids, err := c.Resolve(ctx)
		if err != nil {
			return err
		}
		_, err = c.Convert(ctx, ids, Options{
			Prefix:  cmd.Prefix,
			Sex:     sex,
			Gender:  cmd.Gender,
			Force:   cmd.Force,
			Verbose: cmd.Verbose,
		})
		return err
	default:
		c.report.Usage()
		return nil
	}
}

// List prints every distinct prefix in first-seen order
func (c *Controller) List(ctx context.Context) error {
	records, err := c.store.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	tally := NewPrefixTally()
	for _, r := range records {
		tally.Add(r.Prefix)
	}

	c.log.Debug().Int("customers", len(records)).Int("prefixes", tally.Len()).Msg("prefixes collected")
	c.report.Prefixes(tally.Prefixes())
	return nil
}

// GenderIDs holds the option values of the gender attribute
type GenderIDs struct {
	Male   string
	Female string
}

// For returns the option value for sex
func (g GenderIDs) For(sex customer.Sex) string {
	if sex == customer.Female {
		return g.Female
	}
	return g.Male
}

// Resolve looks up the gender attribute options and matches the "male" and
// "female" labels case-insensitively. Both must resolve to distinct values.
func (c *Controller) Resolve(ctx context.Context) (GenderIDs, error) {
	path := c.entityType + "/" + c.attribute

	attr, err := c.attributes.Attribute(ctx, c.entityType, c.attribute)
	if err != nil {
		return GenderIDs{}, perrors.NewConfigurationError(path, "unable to load gender attribute", err)
	}

	var ids GenderIDs
	if attr.UsesSource {
		for _, o := range attr.Options(false) {
			switch strings.ToLower(o.Label) {
			case string(customer.Male):
				ids.Male = o.Value
			case string(customer.Female):
				ids.Female = o.Value
			}
		}
	}

	if unsetID(ids.Male) || unsetID(ids.Female) {
		return GenderIDs{}, perrors.NewConfigurationError(path, "unable to get both gender ids", nil)
	}
	if ids.Male == ids.Female {
		return GenderIDs{}, perrors.NewConfigurationError(path,
			fmt.Sprintf("male and female share the same id %q", ids.Male), nil)
	}

	c.log.Debug().Str("male", ids.Male).Str("female", ids.Female).Msg("gender ids resolved")
	return ids, nil
}

// unsetID reports whether an option value cannot identify a gender.
// Option ids start at 1, so "0" is a placeholder.
func unsetID(v string) bool {
	return v == "" || v == "0"
}

// Options select the records a conversion touches
type Options struct {
	Prefix string
	Sex    customer.Sex
	// Gender is the gender as the operator typed it, echoed before the
	// prompt. Empty means Sex.
	Gender  string
	Force   bool
	Verbose bool
}

// Result summarises a conversion
type Result struct {
	Aborted    bool
	Matched    int
	AlreadySet int
	Updated    int
}

// Convert asks for confirmation, then sets the gender of every customer whose
// prefix equals opts.Prefix exactly. Customers with a gender already set are
// left alone unless opts.Force is set. Records are saved one at a time; the
// first failed save stops the run and earlier saves stay in place.
func (c *Controller) Convert(ctx context.Context, ids GenderIDs, opts Options) (*Result, error) {
	genderID := ids.For(opts.Sex)
	result := &Result{}

	c.report.GenderIDs(ids.Male, ids.Female)
	gender := opts.Gender
	if gender == "" {
		gender = string(opts.Sex)
	}
	c.report.Ready(opts.Prefix, gender)

	ok, err := c.confirm.Confirm(confirmQuestion)
	if err != nil {
		c.log.Warn().Err(err).Msg("could not read confirmation, treating as no")
	}
	if err != nil || !ok {
		c.report.Aborted()
		result.Aborted = true
		return result, nil
	}

	c.report.Updating(opts.Verbose)
	timer := timing.NewTimer()

	records, err := c.store.All(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list customers: %w", err)
	}
	timer.Mark("fetch")

	for _, r := range records {
		if r.Prefix != opts.Prefix {
			continue
		}
		result.Matched++

		if opts.Verbose {
			if err := c.report.Customer(r); err != nil {
				c.log.Warn().Err(err).Int64("customer_id", r.ID).Msg("failed to render progress line")
			}
		}

		if r.HasGender() && !opts.Force {
			result.AlreadySet++
			if opts.Verbose {
				c.report.AlreadySet()
			}
			continue
		}

		if err := c.updateGender(ctx, r.ID, genderID); err != nil {
			if opts.Verbose {
				c.report.Failed()
			}
			timer.Mark("update")
			timer.Log(c.log, "conversion stopped")
			c.log.Error().Err(err).Int64("customer_id", r.ID).Int("updated", result.Updated).Msg("conversion stopped")
			c.report.Summary(result.Updated, false)
			return result, err
		}
		result.Updated++
		if opts.Verbose {
			c.report.Done()
		}
	}
	timer.Mark("update")

	c.report.Summary(result.Updated, true)
	timer.Log(c.log, "conversion finished")
	c.log.Info().
		Str("prefix", opts.Prefix).
		Str("gender", string(opts.Sex)).
		Bool("force", opts.Force).
		Int("matched", result.Matched).
		Int("updated", result.Updated).
		Msg("conversion complete")

	return result, nil
}

// updateGender reloads the record so the save carries its current state
func (c *Controller) updateGender(ctx context.Context, id int64, genderID string) error {
	r, err := c.store.Load(ctx, id)
	if err != nil {
		return perrors.NewPersistenceError(id, fmt.Sprintf("failed to load customer %d", id), err)
	}
	r.Gender = genderID
	if err := c.store.Save(ctx, r); err != nil {
		return perrors.NewPersistenceError(id, fmt.Sprintf("failed to save customer %d", id), err)
	}
	c.log.Debug().Int64("customer_id", id).Str("gender", genderID).Msg("customer updated")
	return nil
}
