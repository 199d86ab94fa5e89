// Package seed holds the document a fresh installation starts from.
package seed

import "github.com/bgocumlu/menu/internal/domain"

const RestaurantID = "anatolia"

const imageSize = "?height=300&width=400"

type dish struct {
	price string
	image string
	en    text
	tr    text
}

type text struct {
	name        string
	description string
	tags        []string
}

type section struct {
	id     string
	en, tr domain.MenuCategory
	enName string
	trName string
	dishes []dish
}

var sections = []section{
	{
		id:     "starters",
		enName: "Starters",
		trName: "Başlangıçlar",
		en:     domain.MenuCategory{Title: "Starters", Description: "Begin your culinary journey with our traditional Turkish appetizers"},
		tr:     domain.MenuCategory{Title: "Başlangıçlar", Description: "Geleneksel Türk mutfağının lezzetli başlangıçlarıyla yemeğinize başlayın"},
		dishes: []dish{
			{
				price: "6.50₺",
				image: "https://cdn.yemek.com/mnresize/1250/833/uploads/2020/09/humus-yemekcom.jpg",
				en:    text{"Hummus", "Creamy chickpea dip with tahini, olive oil, lemon juice, and garlic. Served with warm pita bread.", []string{"Vegetarian", "Popular"}},
				tr:    text{"Humus", "Tahin, zeytinyağı, limon suyu ve sarımsak ile hazırlanan kremalı nohut ezmesi. Sıcak pide ile servis edilir.", []string{"Vejetaryen", "Popüler"}},
			},
			{
				price: "7.50₺",
				image: "https://cdn.yemek.com/mnresize/1250/833/uploads/2022/09/10-dakikada-peynirli-borek-onecikan.jpg",
				en:    text{"Börek", "Flaky phyllo pastry filled with feta cheese and spinach, baked to golden perfection.", []string{"Vegetarian"}},
				tr:    text{"Börek", "Beyaz peynir ve ıspanak ile doldurulmuş, altın renginde kızarana kadar pişirilmiş katlı yufka.", []string{"Vejetaryen"}},
			},
			{
				price: "8.00₺",
				image: "https://cdn.yemek.com/mncrop/940/625/uploads/2014/07/zeytinyagli-yaprak-sarmasi-yemekcom.jpg",
				en:    text{"Dolma", "Grape leaves delicately stuffed with aromatic rice, pine nuts, currants, and fresh herbs.", []string{"Vegan"}},
				tr:    text{"Yaprak Sarma", "Aromatik pirinç, çam fıstığı, kuş üzümü ve taze otlar ile doldurulmuş asma yaprağı.", []string{"Vegan"}},
			},
			{
				price: "5.50₺",
				image: "https://cdn.yemek.com/mncrop/940/625/uploads/2020/08/cacik-diyeti-2.jpg",
				en:    text{"Cacık", "Refreshing yogurt with cucumber, garlic, mint, and a touch of olive oil. Perfect for dipping.", []string{"Vegetarian", "Cold"}},
				tr:    text{"Cacık", "Salatalık, sarımsak, nane ve zeytinyağı ile hazırlanan ferahlatıcı yoğurt. Mükemmel bir meze.", []string{"Vejetaryen", "Soğuk"}},
			},
		},
	},
	{
		id:     "mains",
		enName: "Main Courses",
		trName: "Ana Yemekler",
		en:     domain.MenuCategory{Title: "Main Courses", Description: "Savor the authentic flavors of Turkish cuisine with our signature dishes"},
		tr:     domain.MenuCategory{Title: "Ana Yemekler", Description: "Türk mutfağının otantik lezzetlerini imza yemeklerimizle keşfedin"},
		dishes: []dish{
			{
				price: "18.50₺",
				image: "https://cdn.yemek.com/mncrop/940/625/uploads/2016/05/adana-kebap-one-cikan.jpg",
				en:    text{"Adana Kebab", "Spicy minced lamb kebab seasoned with red pepper and grilled over charcoal. Served with bulgur pilaf and grilled vegetables.", []string{"Spicy", "Popular"}},
				tr:    text{"Adana Kebap", "Kırmızı biber ile tatlandırılmış, kömür ateşinde pişirilmiş acılı kıyma kebabı. Bulgur pilavı ve ızgara sebzeler ile servis edilir.", []string{"Acılı", "Popüler"}},
			},
			{
				price: "19.00₺",
				image: "https://cdn.yemek.com/mncrop/940/625/uploads/2017/10/konsept-steak-doner.jpg",
				en:    text{"İskender Kebab", "Thinly sliced döner kebab layered over pieces of pita bread, topped with tomato sauce, melted butter, and yogurt.", []string{"House Special"}},
				tr:    text{"İskender Kebap", "İnce dilimlenmiş döner kebabı, pide parçaları üzerinde, domates sosu, eritilmiş tereyağı ve yoğurt ile servis edilir.", []string{"Şef Spesiyali"}},
			},
			{
				price: "16.50₺",
				image: "https://cdn.yemek.com/mnresize/1250/833/uploads/2017/02/kayseri-mantisi-onecikan-yeni.jpg",
				en:    text{"Manti", "Handmade Turkish dumplings filled with spiced lamb and onions, topped with garlic yogurt, sumac, and mint butter.", []string{"Traditional"}},
				tr:    text{"Mantı", "Baharatlı kuzu kıyması ve soğan ile doldurulmuş el yapımı Türk mantısı, sarımsaklı yoğurt, sumak ve naneli tereyağı ile servis edilir.", []string{"Geleneksel"}},
			},
			{
				price: "15.00₺",
				image: "https://cdn.yemek.com/mncrop/940/625/uploads/2015/01/imam-bayildi-yeni-one-cikan.jpg",
				en:    text{"Imam Bayildi", "Whole eggplant stuffed with onions, garlic, and tomatoes, slowly cooked in olive oil. Served with rice pilaf.", []string{"Vegetarian"}},
				tr:    text{"İmam Bayıldı", "Soğan, sarımsak ve domates ile doldurulmuş, zeytinyağında yavaşça pişirilmiş bütün patlıcan. Pirinç pilavı ile servis edilir.", []string{"Vejetaryen"}},
			},
		},
	},
	{
		id:     "desserts",
		enName: "Desserts",
		trName: "Tatlılar",
		en:     domain.MenuCategory{Title: "Desserts", Description: "Complete your meal with our selection of traditional Turkish sweets"},
		tr:     domain.MenuCategory{Title: "Tatlılar", Description: "Yemeğinizi geleneksel Türk tatlılarımızla tamamlayın"},
		dishes: []dish{
			{
				price: "8.50₺",
				image: "https://cdn.yemek.com/mnresize/1250/833/uploads/2020/01/kolay-baklava-yemekcom.jpg",
				en:    text{"Baklava", "Layers of delicate phyllo pastry filled with chopped pistachios, sweetened with honey syrup. Served with vanilla ice cream.", []string{"Popular", "Contains Nuts"}},
				tr:    text{"Baklava", "Kıyılmış Antep fıstığı ile doldurulmuş, bal şerbeti ile tatlandırılmış ince yufka katmanları. Vanilyalı dondurma ile servis edilir.", []string{"Popüler", "Fıstık İçerir"}},
			},
			{
				price: "9.00₺",
				image: "https://cdn.yemek.com/mnresize/1250/833/uploads/2015/05/kunefe-reels-yemekcom-1.jpg",
				en:    text{"Künefe", "Shredded phyllo pastry layered with unsalted cheese, soaked in sweet syrup and topped with crushed pistachios.", []string{"Hot", "House Special"}},
				tr:    text{"Künefe", "Tuzsuz peynir ile katmanlanmış kadayıf, tatlı şerbet ile ıslatılmış ve Antep fıstığı ile süslenmiş.", []string{"Sıcak", "Şef Spesiyali"}},
			},
			{
				price: "7.00₺",
				image: "https://cdn.yemek.com/mnresize/1250/833/uploads/2021/10/lokum-reels-yemekcom.jpg",
				en:    text{"Turkish Delight", "Assorted lokum with various flavors including rose, lemon, and pistachio, dusted with powdered sugar.", []string{"Traditional"}},
				tr:    text{"Türk Lokumu", "Gül, limon ve Antep fıstığı dahil çeşitli aromalarda lokum, pudra şekeri ile kaplanmış.", []string{"Geleneksel"}},
			},
			{
				price: "6.50₺",
				image: "https://cdn.yemek.com/mnresize/1250/833/uploads/2019/05/sutlac-guncelleme-sunum-1.jpg",
				en:    text{"Sütlaç", "Creamy rice pudding infused with vanilla and cinnamon, baked until golden on top.", []string{"Vegetarian"}},
				tr:    text{"Sütlaç", "Vanilya ve tarçın ile tatlandırılmış, üzeri altın renginde kızarana kadar pişirilmiş kremalı pirinç muhallebisi.", []string{"Vejetaryen"}},
			},
		},
	},
	{
		id:     "drinks",
		enName: "Drinks",
		trName: "İçecekler",
		en:     domain.MenuCategory{Title: "Beverages", Description: "Complement your meal with traditional Turkish drinks"},
		tr:     domain.MenuCategory{Title: "İçecekler", Description: "Yemeğinizi geleneksel Türk içecekleri ile tamamlayın"},
		dishes: []dish{
			{
				price: "3.00₺",
				image: "https://cdn.yemek.com/uploads/2015/01/cay-demleme.jpg",
				en:    text{"Turkish Tea", "Traditional black tea served in a tulip-shaped glass. The perfect end to any meal.", []string{"Hot", "Traditional"}},
				tr:    text{"Türk Çayı", "Lale şeklindeki bardakta servis edilen geleneksel siyah çay. Her yemeğin mükemmel sonu.", []string{"Sıcak", "Geleneksel"}},
			},
			{
				price: "4.50₺",
				image: "https://cdn.yemek.com/mnresize/1250/833/uploads/2024/11/vanilyali-turk-kahvesi-tarifi.jpg",
				en:    text{"Turkish Coffee", "Finely ground coffee brewed in a cezve, served with Turkish delight on the side.", []string{"Hot", "Traditional"}},
				tr:    text{"Türk Kahvesi", "Cezve'de pişirilmiş ince öğütülmüş kahve, yanında Türk lokumu ile servis edilir.", []string{"Sıcak", "Geleneksel"}},
			},
			{
				price: "3.50₺",
				image: "https://cdn.yemek.com/mnresize/1250/833/uploads/2023/10/ayran-sunum-yemekcom.jpg",
				en:    text{"Ayran", "Refreshing yogurt drink with a touch of salt. A perfect companion to spicy dishes.", []string{"Cold", "Popular"}},
				tr:    text{"Ayran", "Bir tutam tuz ile hazırlanan ferahlatıcı yoğurt içeceği. Acılı yemeklerin mükemmel eşlikçisi.", []string{"Soğuk", "Popüler"}},
			},
			{
				price: "4.00₺",
				image: "https://cdn.yemek.com/mncrop/940/625/uploads/2016/11/salgam-suyu-tarifi.jpg",
				en:    text{"Şalgam", "Fermented turnip and carrot juice with a tangy flavor. An acquired taste loved by many.", []string{"Cold", "Tangy"}},
				tr:    text{"Şalgam", "Ekşi lezzetiyle şalgam ve havuç suyu. Birçok kişinin sevdiği özel bir lezzet.", []string{"Soğuk", "Ekşi"}},
			},
		},
	},
}

// Anatolia returns a fresh copy of the seed restaurant. Both languages share
// the same category ids and every mapping is the identity.
func Anatolia() *domain.Restaurant {
	r := &domain.Restaurant{
		ID:      RestaurantID,
		Name:    "Anatolia",
		Cuisine: "Turkish",
		Theme: domain.Theme{
			PrimaryColor:   "#c83232",
			SecondaryColor: "#00798c",
		},
		Contact: domain.Contact{
			Phone:   "(123) 456-7890",
			Email:   "info@anatoliarestaurant.com",
			Address: "123 Turkish Avenue, City",
		},
	}

	menuEN, menuTR := domain.MenuData{}, domain.MenuData{}
	var listEN, listTR []domain.CategoryRef
	mapping := domain.CategoryMapping{}

	for _, s := range sections {
		listEN = append(listEN, domain.CategoryRef{ID: s.id, Name: s.enName})
		listTR = append(listTR, domain.CategoryRef{ID: s.id, Name: s.trName})
		mapping[s.id] = s.id

		en, tr := s.en, s.tr
		en.Items = make([]domain.MenuItem, 0, len(s.dishes))
		tr.Items = make([]domain.MenuItem, 0, len(s.dishes))
		for _, d := range s.dishes {
			en.Items = append(en.Items, d.item(d.en))
			tr.Items = append(tr.Items, d.item(d.tr))
		}
		menuEN[s.id] = en
		menuTR[s.id] = tr
	}

	r.MenuByLanguage = domain.ByLanguage[domain.MenuData]{EN: menuEN, TR: menuTR}
	r.CategoryListByLanguage = domain.ByLanguage[[]domain.CategoryRef]{EN: listEN, TR: listTR}
	r.CategoryMappingByLanguage = domain.ByLanguage[domain.CategoryMapping]{EN: mapping, TR: mapping.Clone()}

	return r
}

func (d dish) item(t text) domain.MenuItem {
	return domain.MenuItem{
		Name:        t.name,
		Description: t.description,
		Price:       d.price,
		Image:       d.image + imageSize,
		Tags:        append([]string{}, t.tags...),
	}
}
