package cli

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Dashboard shows the combined overview: recipe count, pantry items expiring
// within the next week and the full pantry list.
func (a *App) Dashboard(ctx context.Context) error {
	d, err := a.planner.Dashboard(ctx, time.Now())
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Recipes: %d\n", len(d.Recipes))
	fmt.Printf("Pantry items: %d\n", len(d.Pantry))

	if len(d.ExpiringSoon) == 0 {
		fmt.Println("Nothing expires within the next 7 days.")
		return nil
	}

	fmt.Println("Expiring within 7 days:")
	for _, item := range d.ExpiringSoon {
		fmt.Printf("  [%d] %s (expires %s)\n", item.ID, item.Name, item.ExpiryDate)
	}
	return nil
}
