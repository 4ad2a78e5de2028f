package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/mealplanner/internal/netx"
	"github.com/dmitrijs2005/mealplanner/internal/server/models"
)

func (a *App) ListRecipes(ctx context.Context) error {
	recipes, err := a.apiClient.ListRecipes(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(recipes) == 0 {
		fmt.Println("No recipes yet. Try 'addrecipe'.")
		return nil
	}

	for _, r := range recipes {
		fmt.Printf("[%d] %s\n", r.ID, r.Title)
	}
	return nil
}

func (a *App) ShowRecipe(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return err
	}

	r, err := a.apiClient.GetRecipe(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("[%d] %s\n", r.ID, r.Title)
	if r.Description != nil {
		fmt.Printf("Description: %s\n", *r.Description)
	}
	fmt.Printf("Ingredients:\n%s\n", r.Ingredients)
	fmt.Printf("Instructions:\n%s\n", r.Instructions)
	if r.Servings != nil {
		fmt.Printf("Servings: %d\n", *r.Servings)
	}
	if r.ImageURL != nil && *r.ImageURL != "" {
		url, err := a.apiClient.ResolveImageURL(ctx, r.ID)
		if err == nil {
			fmt.Printf("Image: %s\n", url)
		}
	}
	return nil
}

func (a *App) AddRecipe(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	ingredients, err := GetMultiline(a.reader, "Enter ingredients", os.Stdout)
	if err != nil {
		return err
	}

	instructions, err := GetMultiline(a.reader, "Enter instructions", os.Stdout)
	if err != nil {
		return err
	}

	recipe := &models.Recipe{Title: title, Ingredients: ingredients, Instructions: instructions}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		recipe.Description = &description
	}

	created, err := a.apiClient.CreateRecipe(ctx, recipe)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Created recipe [%d] %s\n", created.ID, created.Title)
	return nil
}

func (a *App) DeleteRecipe(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.apiClient.DeleteRecipe(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Deleted.")
	return nil
}

// UploadImage attaches a local image file to a recipe. The server hands out
// a presigned URL and the file goes straight to the object store.
func (a *App) UploadImage(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return err
	}

	path, err := getSimpleText(a.reader, "Enter image file path", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	url, err := a.apiClient.IssueImageUploadURL(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if err := netx.UploadToPresignedURL(url, data); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Uploaded.")
	return nil
}
