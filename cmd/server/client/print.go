package client

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/encounter-builder/internal/entities"
)

func printSnapshot(snapshot *structpb.Struct) {
	if snapshot == nil {
		return
	}
	fields := snapshot.GetFields()

	fmt.Printf("Difficulty: %s\n", strings.ToUpper(fields["difficulty"].GetStringValue()))
	fmt.Printf("Average ally level: %d\n", int(fields["average_ally_level"].GetNumberValue()))
	fmt.Printf("Total XP: %d (%d per ally)\n",
		int(fields["total_xp"].GetNumberValue()),
		int(fields["per_ally_xp"].GetNumberValue()))

	budgets := fields["budgets"].GetStructValue().GetFields()
	fmt.Printf("\nBudgets:\n")
	for _, tier := range entities.Tiers() {
		fmt.Printf("  - %-9s %d\n", tier.String()+":", int(budgets[tier.String()].GetNumberValue()))
	}

	printRoster("Allies", fields["allies"].GetListValue())
	printRoster("Opponents", fields["opponents"].GetListValue())
}

func printRoster(title string, list *structpb.ListValue) {
	values := list.GetValues()
	fmt.Printf("\n%s (%d):\n", title, len(values))
	for _, v := range values {
		printCombatant("  - ", v.GetStructValue())
	}
}

func printCombatant(prefix string, c *structpb.Struct) {
	fields := c.GetFields()
	line := fmt.Sprintf("%s%s [%s] level %d (%s)",
		prefix,
		fields["name"].GetStringValue(),
		fields["id"].GetStringValue(),
		int(fields["level"].GetNumberValue()),
		fields["kind"].GetStringValue())
	if tag := fields["collection_tag"].GetStringValue(); tag != "" {
		line += " from " + tag
	}
	fmt.Println(line)
}
