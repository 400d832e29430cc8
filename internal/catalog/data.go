package catalog

import "github.com/jonathan/outfit-recommender/internal/types"

var coldBucket = types.CatalogBucket{
	Outfits: [types.MenuSize]types.OutfitDefinition{
		{Title: "Winter Warrior", Items: [types.OutfitItemCount]string{"Trench Coat", "Corduroy Pants", "Turtleneck"}},
		{Title: "Arctic Explorer", Items: [types.OutfitItemCount]string{"Puffer Jacket", "Thermal Leggings", "Wool Sweater"}},
		{Title: "Cozy Professional", Items: [types.OutfitItemCount]string{"Wool Coat", "Dark Jeans", "Cashmere Sweater"}},
		{Title: "Mountain Hiker", Items: [types.OutfitItemCount]string{"Down Jacket", "Snow Pants", "Thermal Top"}},
		{Title: "Elegant Chill", Items: [types.OutfitItemCount]string{"Peacoat", "Wool Trousers", "Layered Shirt"}},
	},
	Accessories: [types.MenuSize]string{"Wool Scarf", "Insulated Gloves", "Warm Beanie", "Fleece Headband", "Thermal Socks"},
	Shoes:       [types.MenuSize]string{"Waterproof Boots", "Insulated Sneakers", "Warm Chelsea Boots", "Snow Boots", "Thermal Loafers"},
	Jackets:     [types.MenuSize]string{"Thermal Jacket", "Wool Jacket", "Insulated Coat", "Snow Parka", "Thick Hoodie"},
}

var moderateBucket = types.CatalogBucket{
	Outfits: [types.MenuSize]types.OutfitDefinition{
		{Title: "Smart Casual", Items: [types.OutfitItemCount]string{"Long Sleeve Pullover", "Chinos", "Light Cardigan"}},
		{Title: "Weekend Relaxed", Items: [types.OutfitItemCount]string{"Henley Shirt", "Khaki Pants", "Zip-up Hoodie"}},
		{Title: "Urban Explorer", Items: [types.OutfitItemCount]string{"Denim Jacket", "Joggers", "Graphic Tee"}},
		{Title: "Business Breeze", Items: [types.OutfitItemCount]string{"Blazer", "Slacks", "Oxford Shirt"}},
		{Title: "Neutral Trend", Items: [types.OutfitItemCount]string{"Sweatshirt", "Cuffed Pants", "Layered Tee"}},
	},
	Accessories: [types.MenuSize]string{"Baseball Cap", "Stylish Watch", "Leather Belt", "Sunglasses", "Light Scarf"},
	Shoes:       [types.MenuSize]string{"Comfortable Sneakers", "Canvas Shoes", "Casual Loafers", "Walking Boots", "Slip-ons"},
	Jackets:     [types.MenuSize]string{"Bomber Jacket", "Fleece Jacket", "Blazer", "Windbreaker", "Thin Hoodie"},
}

var hotBucket = types.CatalogBucket{
	Outfits: [types.MenuSize]types.OutfitDefinition{
		{Title: "Summer Cool", Items: [types.OutfitItemCount]string{"Linen Shirt", "Cotton Shorts", "Baseball Cap"}},
		{Title: "Beach Ready", Items: [types.OutfitItemCount]string{"Tank Top", "Board Shorts", "Sun Hat"}},
		{Title: "City Heat", Items: [types.OutfitItemCount]string{"Breathable Tee", "Linen Pants", "Cooling Towel"}},
		{Title: "Tropical Explorer", Items: [types.OutfitItemCount]string{"Short Sleeve Shirt", "Cargos", "Sun Bandana"}},
		{Title: "Resort Comfort", Items: [types.OutfitItemCount]string{"Sleeveless Top", "Jersey Shorts", "Visor"}},
	},
	Accessories: [types.MenuSize]string{"Wide-Brim Hat", "Cooling Bandana", "UV Wristband", "Portable Fan", "Sweat Towel"},
	Shoes:       [types.MenuSize]string{"Breathable Sandals", "Flip-Flops", "Mesh Sneakers", "Water Shoes", "Ventilated Slip-ons"},
	Jackets:     [types.MenuSize]string{"Mesh Jacket", "Light Hoodie", "Open Shirt", "Sport Vest", "Cotton Kimono"},
}
