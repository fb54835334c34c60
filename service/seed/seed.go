package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"lendstock.GO/model/entity"
	categoryRepo "lendstock.GO/model/repository/category"
	itemRepo "lendstock.GO/model/repository/item"
	supplierRepo "lendstock.GO/model/repository/supplier"
)

// Options sizes a demo dataset. Zero values fall back to small defaults.
type Options struct {
	Items      int
	Categories int
	Suppliers  int
	Seed       int64
}

var categoryNames = []struct{ name, desc string }{
	{"Strength", "Free weights and resistance equipment"},
	{"Cardio", "Treadmills, bikes and rowers"},
	{"Accessories", "Mats, bands, ropes and small gear"},
	{"Court Sports", "Balls, nets and rackets"},
	{"Safety", "First aid and protective equipment"},
}

var supplierNames = []struct{ name, contact string }{
	{"Titan Fitness Supply", "Marco Reyes"},
	{"ProGym Distributors", "Alice Tan"},
	{"Island Sports Trading", "Jun Villanueva"},
	{"Apex Equipment Co", "Grace Lim"},
}

var itemNames = []string{
	"Dumbbell Set", "Kettlebell", "Yoga Mat", "Jump Rope", "Resistance Band",
	"Medicine Ball", "Barbell", "Weight Plate", "Foam Roller", "Basketball",
	"Volleyball Net", "Badminton Racket", "Boxing Gloves", "Exercise Bike",
	"Rowing Machine", "Pull-up Bar", "Agility Ladder", "Stopwatch",
}

var locations = []string{"Main Gym", "Storage Room A", "Storage Room B", "Court Annex", "Front Desk"}

// Generate writes a demo catalog through the repositories so statuses,
// denormalized names and history come out consistent.
func Generate(
	categories *categoryRepo.Repository,
	suppliers *supplierRepo.Repository,
	items *itemRepo.Repository,
	settings entity.Settings,
	opts Options,
	actor string,
) error {
	if opts.Categories <= 0 || opts.Categories > len(categoryNames) {
		opts.Categories = len(categoryNames)
	}
	if opts.Suppliers <= 0 || opts.Suppliers > len(supplierNames) {
		opts.Suppliers = len(supplierNames)
	}
	if opts.Items <= 0 {
		opts.Items = 20
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	if opts.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	catIDs := make([]string, 0, opts.Categories)
	for _, c := range categoryNames[:opts.Categories] {
		created, err := categories.Add(entity.Category{Name: c.name, Description: c.desc}, actor)
		if err != nil {
			return fmt.Errorf("seed category: %w", err)
		}
		catIDs = append(catIDs, created.ID)
	}

	supIDs := make([]string, 0, opts.Suppliers)
	for i, s := range supplierNames[:opts.Suppliers] {
		created, err := suppliers.Add(entity.Supplier{
			Name:    s.name,
			Contact: s.contact,
			Email:   fmt.Sprintf("sales%d@%s", i+1, "example.com"),
			Phone:   fmt.Sprintf("+63 917 %07d", rng.Intn(10000000)),
		}, actor)
		if err != nil {
			return fmt.Errorf("seed supplier: %w", err)
		}
		supIDs = append(supIDs, created.ID)
	}

	for i := 0; i < opts.Items; i++ {
		name := itemNames[i%len(itemNames)]
		if i >= len(itemNames) {
			name = fmt.Sprintf("%s #%d", name, i/len(itemNames)+1)
		}
		purchase := time.Now().AddDate(0, 0, -rng.Intn(365))
		_, err := items.Add(entity.Item{
			Name:         name,
			CategoryID:   catIDs[rng.Intn(len(catIDs))],
			Quantity:     rng.Intn(25),
			Location:     locations[rng.Intn(len(locations))],
			SupplierID:   supIDs[rng.Intn(len(supIDs))],
			PurchaseDate: purchase.Format("2006-01-02"),
			Price:        decimal.NewFromInt(int64(200 + rng.Intn(20000))),
		}, settings, actor)
		if err != nil {
			return fmt.Errorf("seed item: %w", err)
		}
	}
	return nil
}
