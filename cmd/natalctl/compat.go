package main

import (
	"fmt"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/services"

	"github.com/spf13/cobra"
)

func compatCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compat SIGN1 SIGN2",
		Short:   "Score two sun signs by element",
		Example: "  natalctl compat Áries Leão",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var signs [2]domain.Sign
			for i, arg := range args {
				s, ok := domain.ParseSign(arg)
				if !ok {
					return fmt.Errorf("%q is not a zodiac sign", arg)
				}
				signs[i] = s
			}

			comp, err := services.SignCompatibility(signs[0], signs[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) + %s (%s): %d%% %s\n",
				comp.SignA, comp.ElementA, comp.SignB, comp.ElementB, comp.Score, comp.Rating)
			return nil
		},
	}
}
