// Package errors provides structured errors for the encounter builder.
//
// Errors carry a code, a user-facing message, an optional cause and metadata, and
// convert to and from gRPC status errors at the transport boundary.
//
// # Basic Usage
//
//	err := errors.NotFound("combatant not found").
//	    WithMeta("combatant_id", id)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to resolve combatant")
//	}
//
// Wrap keeps the code of the wrapped error, so a NotFound raised by the catalog is still
// a NotFound when it reaches the handler. WrapWithCode changes it.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("session_id", input.SessionID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer Guidelines
//
// Repositories return NotFound with the missing ID in metadata and wrap storage errors.
// Orchestrators validate input (InvalidArgument) and check privilege (PermissionDenied).
// Handlers call ToGRPCError and nothing else.
//
// Inadmissible opponents and empty parties are not errors. The roster store handles
// both without reporting a failure.
package errors
