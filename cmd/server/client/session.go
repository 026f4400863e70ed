package client

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var createSessionCmd = &cobra.Command{
	Use:   "create-session",
	Short: "Open a new encounter session",
	Long:  `Open a new encounter session with empty rosters. Requires a privileged role.`,
	RunE:  runCreateSession,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show a session's rosters and difficulty",
	RunE:  runSnapshot,
}

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "Close a session",
	RunE:  runEndSession,
}

func init() {
	addSessionFlag(snapshotCmd)
	addSessionFlag(endSessionCmd)
}

func runCreateSession(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.CreateSession(ctx, &structpb.Struct{})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	fmt.Printf("Session created: %s\n\n", resp.GetFields()["session_id"].GetStringValue())
	printSnapshot(resp.GetFields()["snapshot"].GetStructValue())
	return nil
}

func runSnapshot(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetSnapshot(ctx, sessionRequest(nil))
	if err != nil {
		return fmt.Errorf("failed to get snapshot: %w", err)
	}

	printSnapshot(resp.GetFields()["snapshot"].GetStructValue())
	return nil
}

func runEndSession(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	if _, err := client.EndSession(ctx, sessionRequest(nil)); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	fmt.Printf("Session %s ended\n", sessionID)
	return nil
}

// sessionRequest builds a request carrying the session flag plus extra string fields
func sessionRequest(extra map[string]string) *structpb.Struct {
	fields := map[string]*structpb.Value{
		"session_id": structpb.NewStringValue(sessionID),
	}
	for k, v := range extra {
		if v != "" {
			fields[k] = structpb.NewStringValue(v)
		}
	}
	return &structpb.Struct{Fields: fields}
}
