package main

import (
	"fmt"

	"github.com/fwojciec/templatemaker"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return templatemaker.Errorf(templatemaker.EINVALID, "use --force to confirm deletion")
	}

	rec, err := findTemplate(deps, c.Name)
	if templatemaker.ErrorCode(err) == templatemaker.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: template %q not found. Use 'templatemaker list' to see available templates.\n", c.Name)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}

	if err := deps.Templates.DeleteTemplate(deps.Ctx, rec.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", templatemaker.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted template %q\n", rec.Name)
	return nil
}
