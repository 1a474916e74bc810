// Interactive maintenance tool for the product database: listing, adding,
// searching, portion calculation, deleting and user administration.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/polycheckone/baza-kalorii/config"
	"github.com/polycheckone/baza-kalorii/models"
	"github.com/polycheckone/baza-kalorii/services"
)

func main() {
	config.InitDB()
	produkty := services.NewProductService(config.DB)
	auth := services.NewAuthService(config.DB)

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== BAZA KALORII ===")
		fmt.Println("1. Lista produktów")
		fmt.Println("2. Dodaj produkt")
		fmt.Println("3. Szukaj produktu")
		fmt.Println("4. Oblicz porcję")
		fmt.Println("5. Usuń produkt")
		fmt.Println("6. Dodaj użytkownika")
		fmt.Println("0. Wyjście")

		switch prompt(reader, "\nWybierz opcję: ") {
		case "1":
			listProducts(produkty, prompt(reader, "Kategoria (puste = wszystkie): "))
		case "2":
			addProduct(produkty, reader)
		case "3":
			searchProducts(produkty, prompt(reader, "Szukana fraza: "))
		case "4":
			calculatePortion(produkty, reader)
		case "5":
			deleteProduct(produkty, prompt(reader, "Nazwa produktu do usunięcia: "))
		case "6":
			addUser(auth, reader)
		case "0":
			fmt.Println("Do widzenia!")
			return
		default:
			fmt.Println("Nieznana opcja.")
		}
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptFloat(reader *bufio.Reader, label string) (float64, error) {
	return strconv.ParseFloat(prompt(reader, label), 64)
}

func listProducts(svc *services.ProductService, kategoria string) {
	produkty, err := svc.List(kategoria)
	if err != nil {
		fmt.Printf("Błąd: %v\n", err)
		return
	}
	if len(produkty) == 0 {
		fmt.Println("Brak produktów w bazie.")
		return
	}

	fmt.Printf("\n%-30s %8s %8s %8s %8s %-15s\n", "Nazwa", "kcal", "B", "W", "T", "Kategoria")
	fmt.Println(strings.Repeat("-", 85))
	for _, p := range produkty {
		kat := p.Kategoria
		if kat == "" {
			kat = "-"
		}
		fmt.Printf("%-30s %8.1f %8.1f %8.1f %8.1f %-15s\n",
			p.Nazwa, p.Kalorie, p.Bialko, p.Weglowodany, p.Tluszcze, kat)
	}
	fmt.Printf("\nRazem produktów: %d\n", len(produkty))
}

func addProduct(svc *services.ProductService, reader *bufio.Reader) {
	fmt.Println("\nDodawanie produktu (wartości na 100g):")
	nazwa := prompt(reader, "Nazwa: ")

	kalorie, err := promptFloat(reader, "Kalorie (kcal): ")
	if err != nil {
		fmt.Println("Błąd: Wprowadź poprawne wartości liczbowe.")
		return
	}
	bialko, err := promptFloat(reader, "Białko (g): ")
	if err != nil {
		fmt.Println("Błąd: Wprowadź poprawne wartości liczbowe.")
		return
	}
	weglowodany, err := promptFloat(reader, "Węglowodany (g): ")
	if err != nil {
		fmt.Println("Błąd: Wprowadź poprawne wartości liczbowe.")
		return
	}
	tluszcze, err := promptFloat(reader, "Tłuszcze (g): ")
	if err != nil {
		fmt.Println("Błąd: Wprowadź poprawne wartości liczbowe.")
		return
	}
	kategoria := prompt(reader, "Kategoria (opcjonalnie): ")

	err = svc.Add(&models.Product{
		Nazwa:       nazwa,
		Kalorie:     kalorie,
		Bialko:      bialko,
		Weglowodany: weglowodany,
		Tluszcze:    tluszcze,
		Kategoria:   kategoria,
	})
	switch {
	case errors.Is(err, services.ErrProductExists):
		fmt.Printf("Produkt %q już istnieje w bazie.\n", nazwa)
	case err != nil:
		fmt.Printf("Błąd: %v\n", err)
	default:
		fmt.Printf("Dodano produkt: %s\n", nazwa)
	}
}

func searchProducts(svc *services.ProductService, fraza string) {
	produkty, err := svc.SearchByName(fraza)
	if err != nil {
		fmt.Printf("Błąd: %v\n", err)
		return
	}
	if len(produkty) == 0 {
		fmt.Printf("Nie znaleziono produktów zawierających %q.\n", fraza)
		return
	}

	fmt.Printf("\n%-30s %8s %8s %8s %8s\n", "Nazwa", "kcal", "B", "W", "T")
	fmt.Println(strings.Repeat("-", 70))
	for _, p := range produkty {
		fmt.Printf("%-30s %8.1f %8.1f %8.1f %8.1f\n",
			p.Nazwa, p.Kalorie, p.Bialko, p.Weglowodany, p.Tluszcze)
	}
}

func calculatePortion(svc *services.ProductService, reader *bufio.Reader) {
	nazwa := prompt(reader, "Nazwa produktu: ")

	gramy, err := promptFloat(reader, "Ilość (g): ")
	if err != nil {
		fmt.Println("Błąd: Wprowadź poprawną wartość liczbową.")
		return
	}

	p, err := svc.ByName(nazwa)
	if errors.Is(err, services.ErrProductNotFound) {
		fmt.Printf("Nie znaleziono produktu: %s\n", nazwa)
		return
	}
	if err != nil {
		fmt.Printf("Błąd: %v\n", err)
		return
	}

	porcja := services.ScalePortion(p, gramy)
	fmt.Printf("\n%s - %.0fg:\n", porcja.Nazwa, porcja.Gramy)
	fmt.Printf("  Kalorie:     %.1f kcal\n", porcja.Kalorie)
	fmt.Printf("  Białko:      %.1f g\n", porcja.Bialko)
	fmt.Printf("  Węglowodany: %.1f g\n", porcja.Weglowodany)
	fmt.Printf("  Tłuszcze:    %.1f g\n", porcja.Tluszcze)
}

func deleteProduct(svc *services.ProductService, nazwa string) {
	usunieto, err := svc.Delete(nazwa)
	if err != nil {
		fmt.Printf("Błąd: %v\n", err)
		return
	}
	if usunieto {
		fmt.Printf("Usunięto produkt: %s\n", nazwa)
	} else {
		fmt.Printf("Nie znaleziono produktu: %s\n", nazwa)
	}
}

func addUser(svc *services.AuthService, reader *bufio.Reader) {
	login := prompt(reader, "Login: ")
	haslo := prompt(reader, "Hasło (puste = konto gościa): ")

	err := svc.AddUser(login, haslo)
	switch {
	case errors.Is(err, services.ErrUserExists):
		fmt.Printf("Użytkownik %q już istnieje.\n", login)
	case err != nil:
		fmt.Printf("Błąd: %v\n", err)
	default:
		fmt.Printf("Dodano użytkownika: %s\n", login)
	}
}
