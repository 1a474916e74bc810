// One-shot loader filling the database with sample products. Safe to run
// again: existing names are skipped.
package main

import (
	"errors"
	"log"

	"github.com/polycheckone/baza-kalorii/config"
	"github.com/polycheckone/baza-kalorii/models"
	"github.com/polycheckone/baza-kalorii/services"
)

var sampleProducts = []models.Product{
	// Nabiał
	{Nazwa: "Jajko kurze", Kalorie: 155, Bialko: 13.0, Weglowodany: 1.1, Tluszcze: 11.0, Kategoria: "nabiał"},
	{Nazwa: "Mleko 2%", Kalorie: 50, Bialko: 3.4, Weglowodany: 4.8, Tluszcze: 2.0, Kategoria: "nabiał"},
	{Nazwa: "Ser żółty gouda", Kalorie: 356, Bialko: 25.0, Weglowodany: 2.2, Tluszcze: 27.0, Kategoria: "nabiał"},
	{Nazwa: "Twaróg półtłusty", Kalorie: 119, Bialko: 18.0, Weglowodany: 4.0, Tluszcze: 4.0, Kategoria: "nabiał"},
	{Nazwa: "Jogurt naturalny", Kalorie: 61, Bialko: 5.0, Weglowodany: 4.0, Tluszcze: 3.0, Kategoria: "nabiał"},

	// Mięso
	{Nazwa: "Pierś z kurczaka", Kalorie: 110, Bialko: 23.0, Weglowodany: 0.0, Tluszcze: 1.5, Kategoria: "mięso"},
	{Nazwa: "Pierś z indyka", Kalorie: 104, Bialko: 24.0, Weglowodany: 0.0, Tluszcze: 1.0, Kategoria: "mięso"},
	{Nazwa: "Wołowina mielona", Kalorie: 250, Bialko: 17.0, Weglowodany: 0.0, Tluszcze: 20.0, Kategoria: "mięso"},
	{Nazwa: "Schab wieprzowy", Kalorie: 157, Bialko: 21.0, Weglowodany: 0.0, Tluszcze: 8.0, Kategoria: "mięso"},

	// Węglowodany
	{Nazwa: "Ryż biały ugotowany", Kalorie: 130, Bialko: 2.7, Weglowodany: 28.0, Tluszcze: 0.3, Kategoria: "węglowodany"},
	{Nazwa: "Makaron ugotowany", Kalorie: 131, Bialko: 5.0, Weglowodany: 25.0, Tluszcze: 1.0, Kategoria: "węglowodany"},
	{Nazwa: "Chleb pszenny", Kalorie: 265, Bialko: 9.0, Weglowodany: 49.0, Tluszcze: 3.0, Kategoria: "węglowodany"},
	{Nazwa: "Chleb żytni", Kalorie: 215, Bialko: 6.0, Weglowodany: 46.0, Tluszcze: 1.0, Kategoria: "węglowodany"},
	{Nazwa: "Ziemniaki gotowane", Kalorie: 77, Bialko: 2.0, Weglowodany: 17.0, Tluszcze: 0.1, Kategoria: "węglowodany"},
	{Nazwa: "Płatki owsiane", Kalorie: 379, Bialko: 13.0, Weglowodany: 68.0, Tluszcze: 6.5, Kategoria: "węglowodany"},

	// Warzywa
	{Nazwa: "Pomidor", Kalorie: 18, Bialko: 0.9, Weglowodany: 3.9, Tluszcze: 0.2, Kategoria: "warzywa"},
	{Nazwa: "Ogórek", Kalorie: 15, Bialko: 0.7, Weglowodany: 3.6, Tluszcze: 0.1, Kategoria: "warzywa"},
	{Nazwa: "Marchewka", Kalorie: 41, Bialko: 0.9, Weglowodany: 10.0, Tluszcze: 0.2, Kategoria: "warzywa"},
	{Nazwa: "Brokuły", Kalorie: 34, Bialko: 2.8, Weglowodany: 7.0, Tluszcze: 0.4, Kategoria: "warzywa"},
	{Nazwa: "Szpinak", Kalorie: 23, Bialko: 2.9, Weglowodany: 3.6, Tluszcze: 0.4, Kategoria: "warzywa"},

	// Owoce
	{Nazwa: "Jabłko", Kalorie: 52, Bialko: 0.3, Weglowodany: 14.0, Tluszcze: 0.2, Kategoria: "owoce"},
	{Nazwa: "Banan", Kalorie: 89, Bialko: 1.1, Weglowodany: 23.0, Tluszcze: 0.3, Kategoria: "owoce"},
	{Nazwa: "Pomarańcza", Kalorie: 47, Bialko: 0.9, Weglowodany: 12.0, Tluszcze: 0.1, Kategoria: "owoce"},

	// Tłuszcze
	{Nazwa: "Oliwa z oliwek", Kalorie: 884, Bialko: 0.0, Weglowodany: 0.0, Tluszcze: 100.0, Kategoria: "tłuszcze"},
	{Nazwa: "Masło", Kalorie: 717, Bialko: 0.9, Weglowodany: 0.1, Tluszcze: 81.0, Kategoria: "tłuszcze"},
	{Nazwa: "Orzechy włoskie", Kalorie: 654, Bialko: 15.0, Weglowodany: 14.0, Tluszcze: 65.0, Kategoria: "tłuszcze"},
	{Nazwa: "Migdały", Kalorie: 579, Bialko: 21.0, Weglowodany: 22.0, Tluszcze: 49.0, Kategoria: "tłuszcze"},
}

func main() {
	config.InitDB()
	svc := services.NewProductService(config.DB)

	log.Println("Dodawanie przykładowych produktów...")
	for i := range sampleProducts {
		p := sampleProducts[i]
		err := svc.Add(&p)
		switch {
		case errors.Is(err, services.ErrProductExists):
			log.Printf("Produkt %q już istnieje w bazie.", p.Nazwa)
		case err != nil:
			log.Printf("Nie udało się dodać %q: %v", p.Nazwa, err)
		default:
			log.Printf("Dodano produkt: %s", p.Nazwa)
		}
	}
	log.Println("Gotowe.")
}
