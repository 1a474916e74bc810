package services

// LocalProduct is an entry of the curated product list compiled into the
// binary. Values per 100 g.
type LocalProduct struct {
	ID          int
	Nazwa       string
	Kalorie     float64
	Bialko      float64
	Weglowodany float64
	Tluszcze    float64
}

// LocalProducts is the curated list of common foods, loaded once and shared
// read-only across requests. First source consulted by the search
// aggregator.
var LocalProducts = []LocalProduct{
	// Nabiał
	{1, "Jajko kurze", 155, 13.0, 1.1, 11.0},
	{2, "Mleko 2%", 50, 3.4, 4.8, 2.0},
	{3, "Mleko 3,2%", 61, 3.3, 4.7, 3.2},
	{4, "Ser żółty gouda", 356, 25.0, 2.2, 27.0},
	{5, "Ser mozzarella", 280, 22.0, 2.2, 21.0},
	{6, "Ser feta", 264, 14.0, 4.1, 21.0},
	{7, "Twaróg półtłusty", 119, 18.0, 4.0, 4.0},
	{8, "Twaróg chudy", 99, 20.0, 3.5, 0.5},
	{9, "Jogurt naturalny", 61, 5.0, 4.0, 3.0},
	{10, "Jogurt grecki", 97, 9.0, 3.8, 5.0},
	{11, "Kefir", 51, 3.4, 4.7, 2.0},
	{12, "Śmietana 18%", 184, 2.5, 3.6, 18.0},
	{13, "Maślanka", 37, 3.4, 4.7, 0.5},

	// Mięso i ryby
	{14, "Pierś z kurczaka", 110, 23.0, 0.0, 1.5},
	{15, "Udko z kurczaka", 161, 18.0, 0.0, 10.0},
	{16, "Pierś z indyka", 104, 24.0, 0.0, 1.0},
	{17, "Wołowina mielona", 250, 17.0, 0.0, 20.0},
	{18, "Schab wieprzowy", 157, 21.0, 0.0, 8.0},
	{19, "Karkówka", 267, 16.0, 0.0, 22.0},
	{20, "Szynka wieprzowa", 110, 18.0, 1.0, 4.0},
	{21, "Kiełbasa śląska", 301, 13.0, 2.0, 27.0},
	{22, "Parówki", 270, 11.0, 3.0, 24.0},
	{23, "Boczek wędzony", 458, 11.0, 0.7, 45.0},
	{24, "Łosoś", 208, 20.0, 0.0, 13.0},
	{25, "Dorsz", 82, 18.0, 0.0, 0.7},
	{26, "Tuńczyk w sosie własnym", 108, 25.0, 0.0, 0.8},
	{27, "Makrela wędzona", 305, 19.0, 0.0, 25.0},
	{28, "Śledź w oleju", 301, 16.0, 0.0, 26.0},

	// Węglowodany
	{29, "Ryż biały ugotowany", 130, 2.7, 28.0, 0.3},
	{30, "Ryż brązowy ugotowany", 111, 2.6, 23.0, 0.9},
	{31, "Makaron ugotowany", 131, 5.0, 25.0, 1.0},
	{32, "Makaron pełnoziarnisty ugotowany", 124, 5.3, 25.0, 1.1},
	{33, "Chleb pszenny", 265, 9.0, 49.0, 3.0},
	{34, "Chleb żytni", 215, 6.0, 46.0, 1.0},
	{35, "Chleb razowy", 225, 6.5, 43.0, 1.7},
	{36, "Bułka pszenna", 277, 9.0, 56.0, 2.0},
	{37, "Ziemniaki gotowane", 77, 2.0, 17.0, 0.1},
	{38, "Płatki owsiane", 379, 13.0, 68.0, 6.5},
	{39, "Kasza gryczana ugotowana", 92, 3.4, 20.0, 0.6},
	{40, "Kasza jaglana ugotowana", 119, 3.5, 23.0, 1.0},
	{41, "Kuskus ugotowany", 112, 3.8, 23.0, 0.2},
	{42, "Musli z owocami", 340, 8.0, 66.0, 5.0},

	// Warzywa
	{43, "Pomidor", 18, 0.9, 3.9, 0.2},
	{44, "Ogórek", 15, 0.7, 3.6, 0.1},
	{45, "Ogórek kiszony", 11, 0.6, 1.9, 0.1},
	{46, "Marchewka", 41, 0.9, 10.0, 0.2},
	{47, "Brokuły", 34, 2.8, 7.0, 0.4},
	{48, "Kalafior", 25, 1.9, 5.0, 0.3},
	{49, "Szpinak", 23, 2.9, 3.6, 0.4},
	{50, "Sałata", 15, 1.4, 2.9, 0.2},
	{51, "Papryka czerwona", 31, 1.0, 6.0, 0.3},
	{52, "Cebula", 40, 1.1, 9.3, 0.1},
	{53, "Czosnek", 149, 6.4, 33.0, 0.5},
	{54, "Cukinia", 17, 1.2, 3.1, 0.3},
	{55, "Bakłażan", 25, 1.0, 6.0, 0.2},
	{56, "Burak", 43, 1.6, 10.0, 0.2},
	{57, "Kapusta biała", 25, 1.3, 5.8, 0.1},
	{58, "Kapusta kiszona", 19, 0.9, 4.3, 0.1},
	{59, "Fasola biała gotowana", 139, 9.7, 25.0, 0.5},
	{60, "Ciecierzyca gotowana", 164, 8.9, 27.0, 2.6},
	{61, "Soczewica gotowana", 116, 9.0, 20.0, 0.4},
	{62, "Groszek zielony", 81, 5.4, 14.0, 0.4},
	{63, "Kukurydza konserwowa", 96, 2.9, 19.0, 1.2},
	{64, "Pieczarki", 22, 3.1, 3.3, 0.3},

	// Owoce
	{65, "Jabłko", 52, 0.3, 14.0, 0.2},
	{66, "Banan", 89, 1.1, 23.0, 0.3},
	{67, "Pomarańcza", 47, 0.9, 12.0, 0.1},
	{68, "Mandarynka", 53, 0.8, 13.0, 0.3},
	{69, "Gruszka", 57, 0.4, 15.0, 0.1},
	{70, "Truskawki", 32, 0.7, 7.7, 0.3},
	{71, "Maliny", 52, 1.2, 12.0, 0.7},
	{72, "Borówki", 57, 0.7, 14.0, 0.3},
	{73, "Winogrona", 69, 0.7, 18.0, 0.2},
	{74, "Arbuz", 30, 0.6, 7.6, 0.2},
	{75, "Kiwi", 61, 1.1, 15.0, 0.5},
	{76, "Śliwka", 46, 0.7, 11.0, 0.3},
	{77, "Brzoskwinia", 39, 0.9, 9.5, 0.3},
	{78, "Cytryna", 29, 1.1, 9.3, 0.3},
	{79, "Awokado", 160, 2.0, 8.5, 15.0},

	// Tłuszcze i orzechy
	{80, "Oliwa z oliwek", 884, 0.0, 0.0, 100.0},
	{81, "Olej rzepakowy", 884, 0.0, 0.0, 100.0},
	{82, "Masło", 717, 0.9, 0.1, 81.0},
	{83, "Margaryna", 717, 0.2, 0.7, 80.0},
	{84, "Orzechy włoskie", 654, 15.0, 14.0, 65.0},
	{85, "Orzechy laskowe", 628, 15.0, 17.0, 61.0},
	{86, "Migdały", 579, 21.0, 22.0, 49.0},
	{87, "Orzeszki ziemne", 567, 26.0, 16.0, 49.0},
	{88, "Pestki dyni", 559, 30.0, 11.0, 49.0},
	{89, "Słonecznik łuskany", 584, 21.0, 20.0, 51.0},
	{90, "Masło orzechowe", 588, 25.0, 20.0, 50.0},

	// Inne
	{91, "Cukier", 387, 0.0, 100.0, 0.0},
	{92, "Miód", 304, 0.3, 82.0, 0.0},
	{93, "Czekolada gorzka", 546, 4.9, 61.0, 31.0},
	{94, "Czekolada mleczna", 535, 7.7, 59.0, 30.0},
}
