package client

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/encounter-builder/internal/entities"
)

var (
	registerID    string
	registerName  string
	registerKind  string
	registerLevel int
	listKind      string
)

var registerCombatantCmd = &cobra.Command{
	Use:   "register-combatant",
	Short: "Add or replace a world catalog record",
	RunE:  runRegisterCombatant,
}

var listCombatantsCmd = &cobra.Command{
	Use:   "list-combatants",
	Short: "List the world catalog",
	RunE:  runListCombatants,
}

func init() {
	registerCombatantCmd.Flags().StringVar(&registerID, "id", "", "Combatant ID (required)")
	registerCombatantCmd.Flags().StringVar(&registerName, "name", "", "Display name (required)")
	registerCombatantCmd.Flags().StringVar(&registerKind, "kind", string(entities.KindNonPlayerCreature),
		"Kind: player-character or non-player-creature")
	registerCombatantCmd.Flags().IntVar(&registerLevel, "level", 1, "Level")
	_ = registerCombatantCmd.MarkFlagRequired("id")   // nolint:errcheck // safe to ignore in init
	_ = registerCombatantCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init

	listCombatantsCmd.Flags().StringVar(&listKind, "kind", "", "Only list this kind")
}

func runRegisterCombatant(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	req, err := structpb.NewStruct(map[string]any{
		"combatant": map[string]any{
			"id":    registerID,
			"name":  registerName,
			"kind":  registerKind,
			"level": registerLevel,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.RegisterCombatant(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to register combatant: %w", err)
	}

	verb := "Updated"
	if resp.GetFields()["created"].GetBoolValue() {
		verb = "Registered"
	}
	printCombatant(verb+": ", resp.GetFields()["combatant"].GetStructValue())
	return nil
}

func runListCombatants(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	req := &structpb.Struct{Fields: map[string]*structpb.Value{}}
	if listKind != "" {
		req.Fields["kind"] = structpb.NewStringValue(listKind)
	}

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListCombatants(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list combatants: %w", err)
	}

	values := resp.GetFields()["combatants"].GetListValue().GetValues()
	fmt.Printf("World catalog (%d):\n", len(values))
	for _, v := range values {
		printCombatant("  - ", v.GetStructValue())
	}
	return nil
}
