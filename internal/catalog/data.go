package catalog

import "github.com/iStefan20/YumTum/internal/domain"

// dishSeed is the static menu. Category tagging for alcoholic drinks is
// inconsistent in the source data (some are "Alcoholic Drinks", some just
// "Drinks" or "Cocktails"), which is why restricted classification also
// checks dish names. See checkout.RestrictedNames.
var dishSeed = []domain.Dish{
	// Romania
	{ID: "2", Name: "Tochitură", Price: "£11.50", Category: "Main Courses", Country: "Romania", Description: "Pork stew with polenta, fried egg and cheese."},
	{ID: "3", Name: "Mici", Price: "£7.00", Category: "Grill", Country: "Romania", Description: "Grilled minced meat rolls served with mustard."},
	{ID: "6", Name: "Ciorbă de perișoare", Price: "£6.50", Category: "Soups", Country: "Romania", Description: "Sour soup with meatballs and vegetables."},
	{ID: "7", Name: "Pork Steak", Price: "£12.00", Category: "Grill", Country: "Romania", Description: "Marinated pork neck steak off the grill."},
	{ID: "10", Name: "Papanasi", Price: "£5.50", Category: "Desserts", Country: "Romania", Description: "Fried doughnuts with sour cream and jam."},
	{ID: "11", Name: "Cozonac", Price: "£4.50", Category: "Desserts", Country: "Romania", Description: "Sweet bread with walnut and cocoa filling."},
	{ID: "14", Name: "Palincă", Price: "£4.00", Category: "Alcoholic Drinks", Country: "Romania", Description: "Traditional double-distilled plum brandy, 50% vol."},
	{ID: "15", Name: "Socată", Price: "£2.50", Category: "Drinks", Country: "Romania", Description: "Homemade elderflower cordial."},
	{ID: "16", Name: "Vin Fiert", Price: "£4.50", Category: "Drinks", Country: "Romania", Description: "Mulled red wine with cinnamon and citrus."},
	{ID: "100", Name: "Mustard", Price: "£0.50", Category: "Sides", Country: "Romania", Description: "Classic yellow mustard, the mici companion."},

	// Italy
	{ID: "24", Name: "Fettuccine Alfredo", Price: "£10.50", Category: "Pasta", Country: "Italy", Description: "Fresh fettuccine in a parmesan butter sauce."},
	{ID: "26", Name: "Spaghetti allo Scoglio", Price: "£13.00", Category: "Pasta", Country: "Italy", Description: "Spaghetti with mussels, clams and prawns."},
	{ID: "27", Name: "Pasta Quattro Formaggi", Price: "£9.50", Category: "Pasta", Country: "Italy", Description: "Four-cheese sauce over penne."},
	{ID: "28", Name: "Tiramisu", Price: "£5.00", Category: "Desserts", Country: "Italy", Description: "Espresso-soaked savoiardi with mascarpone cream."},

	// Greece
	{ID: "38", Name: "Souvlaki", Price: "£8.00", Category: "Street Food", Country: "Greece", Description: "Grilled pork skewers with pita and tzatziki."},
	{ID: "39", Name: "Gyros", Price: "£7.50", Category: "Street Food", Country: "Greece", Description: "Pork gyros wrap with tomato, onion and fries."},
	{ID: "40", Name: "Spanakopita", Price: "£6.00", Category: "Starters", Country: "Greece", Description: "Spinach and feta pie in filo pastry."},
	{ID: "41", Name: "Baklava", Price: "£4.50", Category: "Desserts", Country: "Greece", Description: "Layered filo with walnuts and honey syrup."},
	{ID: "42", Name: "Galaktoboureko", Price: "£4.50", Category: "Desserts", Country: "Greece", Description: "Custard pie with crispy filo and syrup."},
	{ID: "43", Name: "Ouzo", Price: "£3.50", Category: "Alcohol", Country: "Greece", Description: "Anise-flavoured aperitif, served chilled."},
	{ID: "44", Name: "Tzatziki", Price: "£3.50", Category: "Starters", Country: "Greece", Description: "Yogurt dip with cucumber and garlic."},

	// China
	{ID: "48", Name: "Peking Duck", Price: "£16.00", Category: "Main Courses", Country: "China", Description: "Crispy roast duck with pancakes and hoisin."},
	{ID: "51", Name: "Dumplings", Price: "£6.50", Category: "Starters", Country: "China", Description: "Steamed pork and chive jiaozi, six pieces."},
	{ID: "55", Name: "Tsingtao Beer", Price: "£3.80", Category: "Drinks", Country: "China", Description: "Crisp lager brewed in Qingdao, 330ml."},

	// Mexico
	{ID: "57", Name: "Guacamole", Price: "£4.50", Category: "Starters", Country: "Mexico", Description: "Smashed avocado with lime, coriander and chilli."},
	{ID: "63", Name: "Tacos", Price: "£8.50", Category: "Street Food", Country: "Mexico", Description: "Three corn tortillas with slow-cooked beef."},
	{ID: "68", Name: "Tres Leches", Price: "£5.00", Category: "Desserts", Country: "Mexico", Description: "Sponge cake soaked in three kinds of milk."},
	{ID: "69", Name: "Margarita", Price: "£6.50", Category: "Cocktails", Country: "Mexico", Description: "Tequila, triple sec and lime, salted rim."},

	// Japan
	{ID: "74", Name: "Tonkatsu", Price: "£10.00", Category: "Main Courses", Country: "Japan", Description: "Breaded pork cutlet with shredded cabbage."},
	{ID: "75", Name: "Okonomiyaki", Price: "£9.00", Category: "Street Food", Country: "Japan", Description: "Savoury cabbage pancake with bonito flakes."},
	{ID: "76", Name: "Mochi", Price: "£4.00", Category: "Desserts", Country: "Japan", Description: "Chewy rice cakes with red bean filling."},
	{ID: "81", Name: "Sake", Price: "£5.50", Category: "Alcoholic Drinks", Country: "Japan", Description: "Junmai rice wine, served warm or cold."},

	// USA
	{ID: "83", Name: "Churros", Price: "£4.00", Category: "Desserts", Country: "Mexico", Description: "Fried dough sticks with cinnamon sugar."},
	{ID: "85", Name: "Burger", Price: "£9.50", Category: "Main Courses", Country: "USA", Description: "Double smashed beef patty with cheddar."},
	{ID: "86", Name: "BBQ Ribs", Price: "£14.00", Category: "Grill", Country: "USA", Description: "Slow-smoked pork ribs in bourbon glaze."},
	{ID: "91", Name: "Apple Pie", Price: "£4.50", Category: "Desserts", Country: "USA", Description: "Warm apple pie with vanilla ice cream."},
	{ID: "98", Name: "Milkshake", Price: "£3.50", Category: "Drinks", Country: "USA", Description: "Thick vanilla shake with whipped cream."},
	{ID: "101", Name: "Fries", Price: "£3.00", Category: "Sides", Country: "USA", Description: "Skin-on fries with sea salt."},
	{ID: "106", Name: "Orange Juice", Price: "£2.50", Category: "Drinks", Country: "USA", Description: "Freshly squeezed orange juice."},
}
