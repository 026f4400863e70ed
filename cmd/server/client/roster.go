package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/encounter-builder/internal/entities"
)

var (
	combatantID   string
	collectionTag string
	combatantName string
	side          string
)

var addAllyCmd = &cobra.Command{
	Use:   "add-ally",
	Short: "Add a combatant to the allies",
	RunE:  runAddAlly,
}

var addOpponentCmd = &cobra.Command{
	Use:   "add-opponent",
	Short: "Offer a combatant to the opponents",
	Long:  `Offer a combatant to the opponents. Combatants more than four levels from the party average are turned away.`,
	RunE:  runAddOpponent,
}

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop a combatant onto a roster the way the table UI does",
	RunE:  runDrop,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a combatant from a roster by id or name",
	RunE:  runRemove,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty both rosters",
	RunE:  runClear,
}

func init() {
	for _, cmd := range []*cobra.Command{addAllyCmd, addOpponentCmd, dropCmd} {
		addSessionFlag(cmd)
		cmd.Flags().StringVar(&combatantID, "combatant-id", "", "Combatant ID (required)")
		cmd.Flags().StringVar(&collectionTag, "collection", "", "Collection tag, e.g. dnd5e-srd (optional)")
		_ = cmd.MarkFlagRequired("combatant-id") // nolint:errcheck // safe to ignore in init
	}

	dropCmd.Flags().StringVar(&side, "side", string(entities.SideOpponents), "Roster to drop onto: allies or opponents")

	addSessionFlag(removeCmd)
	removeCmd.Flags().StringVar(&side, "side", string(entities.SideOpponents), "Roster to remove from: allies or opponents")
	removeCmd.Flags().StringVar(&combatantID, "combatant-id", "", "Combatant ID")
	removeCmd.Flags().StringVar(&combatantName, "name", "", "Combatant name, used when no ID is given")

	addSessionFlag(clearCmd)
}

func runAddAlly(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.AddAlly(ctx, sessionRequest(map[string]string{
		"combatant_id":   combatantID,
		"collection_tag": collectionTag,
	}))
	if err != nil {
		return fmt.Errorf("failed to add ally: %w", err)
	}

	printCombatant("Added ally: ", resp.GetFields()["combatant"].GetStructValue())
	fmt.Println()
	printSnapshot(resp.GetFields()["snapshot"].GetStructValue())
	return nil
}

func runAddOpponent(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.AddOpponent(ctx, sessionRequest(map[string]string{
		"combatant_id":   combatantID,
		"collection_tag": collectionTag,
	}))
	if err != nil {
		return fmt.Errorf("failed to add opponent: %w", err)
	}

	printAdmission(resp.GetFields()["admitted"].GetBoolValue())
	printCombatant("Opponent: ", resp.GetFields()["combatant"].GetStructValue())
	fmt.Println()
	printSnapshot(resp.GetFields()["snapshot"].GetStructValue())
	return nil
}

func runDrop(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	payload, err := json.Marshal(entities.DropPayload{
		Type: entities.DropPayloadType,
		ID:   combatantID,
		Pack: collectionTag,
	})
	if err != nil {
		return fmt.Errorf("failed to encode drop payload: %w", err)
	}

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.DropCombatant(ctx, sessionRequest(map[string]string{
		"side":    side,
		"payload": string(payload),
	}))
	if err != nil {
		return fmt.Errorf("failed to drop combatant: %w", err)
	}

	printAdmission(resp.GetFields()["admitted"].GetBoolValue())
	printCombatant("Dropped: ", resp.GetFields()["combatant"].GetStructValue())
	fmt.Println()
	printSnapshot(resp.GetFields()["snapshot"].GetStructValue())
	return nil
}

func runRemove(_ *cobra.Command, _ []string) error {
	if combatantID == "" && combatantName == "" {
		return fmt.Errorf("one of --combatant-id or --name is required")
	}

	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.RemoveCombatant(ctx, sessionRequest(map[string]string{
		"side":         side,
		"combatant_id": combatantID,
		"name":         combatantName,
	}))
	if err != nil {
		return fmt.Errorf("failed to remove combatant: %w", err)
	}

	if resp.GetFields()["removed"].GetBoolValue() {
		fmt.Printf("Removed from %s\n\n", side)
	} else {
		fmt.Printf("Nothing matched on %s\n\n", side)
	}
	printSnapshot(resp.GetFields()["snapshot"].GetStructValue())
	return nil
}

func runClear(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ClearRosters(ctx, sessionRequest(nil))
	if err != nil {
		return fmt.Errorf("failed to clear rosters: %w", err)
	}

	printSnapshot(resp.GetFields()["snapshot"].GetStructValue())
	return nil
}

func printAdmission(admitted bool) {
	if admitted {
		fmt.Println("Admitted")
		return
	}
	fmt.Println("Rejected: level is out of reach of the party")
}
