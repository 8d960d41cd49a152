package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/pageza/heritage-recipes/backend/config"
	"github.com/pageza/heritage-recipes/backend/internal/app"
	"github.com/pageza/heritage-recipes/backend/internal/logger"
	"github.com/pageza/heritage-recipes/backend/internal/models"
	"github.com/pageza/heritage-recipes/backend/internal/repository"
	"github.com/pageza/heritage-recipes/backend/internal/types"
)

const ownerEmail = "test@example.com"

type seedRecipe struct {
	title        string
	description  string
	ingredients  []string
	instructions []string
	category     models.Category
	prepTime     int
	cookTime     int
	servings     int
	imageURL     string
}

var recipes = []seedRecipe{
	{
		title:       "Butter Chicken",
		description: "Creamy tomato-based curry with tender chicken pieces. A classic Indian restaurant favorite with aromatic spices.",
		ingredients: []string{
			"500g chicken breast, cut into pieces",
			"2 tablespoons butter",
			"1 onion, finely chopped",
			"4 garlic cloves, minced",
			"1 tablespoon ginger paste",
			"400ml tomato puree",
			"200ml heavy cream",
			"2 teaspoons garam masala",
			"1 teaspoon turmeric powder",
			"Salt and pepper to taste",
		},
		instructions: []string{
			"Heat butter in a large pan and saute the onions until golden brown",
			"Add garlic and ginger paste, cook for 1 minute",
			"Add the spices and stir well",
			"Add tomato puree and simmer for 10 minutes",
			"Add the chicken pieces and cook until they are 3/4 cooked",
			"Stir in the heavy cream and simmer until the chicken is tender",
			"Garnish with fresh cilantro and serve hot",
		},
		category: models.CategoryDinner,
		prepTime: 15,
		cookTime: 30,
		servings: 4,
		imageURL: "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=500",
	},
	{
		title:       "Biryani",
		description: "Aromatic rice dish cooked with meat and spices. A traditional South Asian delicacy.",
		ingredients: []string{
			"400g basmati rice",
			"500g chicken or mutton, cut into pieces",
			"4 onions, sliced",
			"4 tablespoons ghee",
			"200ml yogurt",
			"4 green cardamom pods",
			"6 cloves",
			"2 bay leaves",
			"Saffron strands soaked in milk",
			"Fresh mint leaves",
		},
		instructions: []string{
			"Soak rice in water for 30 minutes",
			"Marinate meat with yogurt and spices for 1 hour",
			"Fry onions in ghee until golden brown, set aside half",
			"Boil water with whole spices and cook rice until 70% done",
			"Layer the meat, fried onions and rice in a heavy-bottomed pot",
			"Pour saffron milk on top and scatter mint leaves",
			"Cook covered on low heat for 45 minutes",
		},
		category: models.CategoryDinner,
		prepTime: 90,
		cookTime: 60,
		servings: 6,
		imageURL: "https://images.unsplash.com/photo-1563379091339-03b21ab4a104?w=500",
	},
	{
		title:       "Masala Dosa",
		description: "Crispy rice crepe filled with spiced potato curry. A popular South Indian breakfast.",
		ingredients: []string{
			"1 cup rice",
			"1/2 cup urad dal",
			"1/2 teaspoon fenugreek seeds",
			"4 medium potatoes",
			"2 onions, chopped",
			"1 teaspoon mustard seeds",
			"8-10 curry leaves",
			"Oil for frying",
		},
		instructions: []string{
			"Soak rice, urad dal and fenugreek seeds for 4 hours",
			"Grind into a smooth batter and ferment for 6-8 hours",
			"Boil the potatoes and cut into cubes",
			"Temper mustard seeds and curry leaves, then add onions and potatoes",
			"Spread batter thin on a hot griddle",
			"Fill with the potato mixture, fold and serve with sambar",
		},
		category: models.CategoryBreakfast,
		prepTime: 30,
		cookTime: 15,
		servings: 4,
		imageURL: "https://images.unsplash.com/photo-1585521924397-f97d70e40fca?w=500",
	},
	{
		title:       "Samosas",
		description: "Crispy pastry triangles filled with spiced potato and peas. A popular appetizer and snack.",
		ingredients: []string{
			"2 cups all-purpose flour",
			"3 tablespoons ghee",
			"4 medium potatoes, boiled and mashed",
			"1 cup green peas",
			"1 teaspoon cumin seeds",
			"1/2 teaspoon garam masala",
			"Oil for frying",
		},
		instructions: []string{
			"Rub ghee into the flour and knead into a stiff dough",
			"Mix potatoes with peas and spices for the filling",
			"Roll the dough into circles, cut in half and shape into cones",
			"Fill each cone and seal the edges",
			"Deep fry until golden brown and serve with chutney",
		},
		category: models.CategorySnacks,
		prepTime: 40,
		cookTime: 20,
		servings: 4,
		imageURL: "https://images.unsplash.com/photo-1599599810694-b3fa7f5b9e1b?w=500",
	},
	{
		title:       "Gulab Jamun",
		description: "Soft spongy balls soaked in fragrant sugar syrup. A classic Indian dessert.",
		ingredients: []string{
			"1 cup milk powder",
			"1/2 cup all-purpose flour",
			"2 tablespoons ghee, melted",
			"1 cup sugar",
			"1 cup water",
			"1 teaspoon cardamom powder",
			"Rose water",
			"Oil for frying",
		},
		instructions: []string{
			"Mix milk powder, flour, ghee and milk into a soft dough",
			"Roll into smooth balls",
			"Boil water with sugar and cardamom to make the syrup",
			"Deep fry the balls until golden brown",
			"Soak in warm syrup for at least 1 hour before serving",
		},
		category: models.CategoryDessert,
		prepTime: 20,
		cookTime: 15,
		servings: 8,
		imageURL: "https://images.unsplash.com/photo-1585675433707-78d83b1fe1cc?w=500",
	},
	{
		title:       "Lassi",
		description: "Refreshing yogurt-based drink with traditional spices. Perfect for hot summer days.",
		ingredients: []string{
			"2 cups plain yogurt",
			"1 cup water",
			"2 tablespoons sugar",
			"1/4 teaspoon cardamom powder",
			"Ice cubes",
		},
		instructions: []string{
			"Blend yogurt, water, sugar and cardamom until frothy",
			"Add ice cubes and blend again",
			"Pour into glasses and serve immediately",
		},
		category: models.CategoryDrinks,
		prepTime: 5,
		cookTime: 0,
		servings: 2,
		imageURL: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=500",
	},
}

func (s seedRecipe) request() *types.CreateRecipeRequest {
	return &types.CreateRecipeRequest{
		Title:        s.title,
		Description:  s.description,
		Ingredients:  s.ingredients,
		Instructions: s.instructions,
		ImageURL:     s.imageURL,
		Category:     s.category,
		PrepTime:     &s.prepTime,
		CookTime:     &s.cookTime,
		Servings:     &s.servings,
	}
}

func main() {
	force := flag.Bool("force", false, "Delete every existing recipe before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logr := logger.New(cfg.LogLevel)

	ctx := context.Background()
	application, err := app.New(ctx, cfg, logr, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer application.Close()
	db := application.DB

	owner, err := application.Users.GetByEmail(ctx, ownerEmail)
	if errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("Test user %s not found, run seed_test_users first", ownerEmail)
	}
	if err != nil {
		log.Fatalf("Failed to look up test user: %v", err)
	}

	var existing int64
	if err := db.WithContext(ctx).Model(&models.Recipe{}).Count(&existing).Error; err != nil {
		log.Fatalf("Failed to count recipes: %v", err)
	}
	if existing > 0 {
		if !*force {
			fmt.Printf("Database already contains %d recipes, use -force to reseed\n", existing)
			return
		}
		err := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Recipe{}).Error
		if err != nil {
			log.Fatalf("Failed to clear recipes: %v", err)
		}
		fmt.Printf("Deleted %d existing recipes\n", existing)
	}

	for i, r := range recipes {
		created, err := application.RecipeService.Create(ctx, owner.ID, r.request())
		if err != nil {
			log.Fatalf("Failed to create recipe %q: %v", r.title, err)
		}
		fmt.Printf("%d. %s (%s)\n", i+1, created.Title, created.Category)
	}
	fmt.Printf("Seeded %d recipes for %s\n", len(recipes), ownerEmail)
}
