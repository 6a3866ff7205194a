package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CategoryModel{},
		model.ProductModel{},
		model.OrderModel{},
		model.ReviewModel{},
		model.BlogPostModel{},
		model.UserModel{},
		model.SiteSettingsModel{},
		model.PageSettingsModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
