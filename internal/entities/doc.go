// Package entities provides the data model shared by the encounter builder: combatants,
// roster sides, difficulty tiers and the derived encounter snapshot.
package entities
