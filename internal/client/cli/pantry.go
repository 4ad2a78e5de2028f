package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/mealplanner/internal/server/models"
)

// formatItem renders one pantry row for the list view.
func formatItem(item *models.PantryItem) string {
	line := fmt.Sprintf("[%d] %s", item.ID, item.Name)
	if item.Quantity != nil {
		line += " " + strconv.FormatFloat(*item.Quantity, 'g', -1, 64)
		if item.Unit != nil {
			line += " " + *item.Unit
		}
	}
	if item.ExpiryDate != nil {
		line += fmt.Sprintf(" (expires %s)", item.ExpiryDate)
	}
	return line
}

func (a *App) ListPantry(ctx context.Context) error {
	items, err := a.apiClient.ListPantry(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(items) == 0 {
		fmt.Println("The pantry is empty. Try 'additem'.")
		return nil
	}

	for _, item := range items {
		fmt.Println(formatItem(item))
	}
	return nil
}

func (a *App) AddPantryItem(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter item name", os.Stdout)
	if err != nil {
		return err
	}

	item := &models.PantryItem{Name: name}

	quantity, err := getSimpleText(a.reader, "Enter quantity (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if quantity != "" {
		parsed, err := strconv.ParseFloat(quantity, 64)
		if err != nil {
			log.Printf("invalid quantity %q", quantity)
			return err
		}
		item.Quantity = &parsed
	}

	expiry, err := getSimpleText(a.reader, "Enter expiry date YYYY-MM-DD (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if expiry != "" {
		parsed, err := time.Parse(models.DateLayout, expiry)
		if err != nil {
			log.Printf("invalid date %q", expiry)
			return err
		}
		d := models.DateOf(parsed)
		item.ExpiryDate = &d
	}

	created, err := a.apiClient.CreatePantryItem(ctx, item)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Added item [%d] %s\n", created.ID, created.Name)
	return nil
}

func (a *App) DeletePantryItem(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter item id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.apiClient.DeletePantryItem(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Deleted.")
	return nil
}
