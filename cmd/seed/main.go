package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/auth"
	"github.com/tallermanager/workshop-backend/internal/config"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seeds the database with a workshop, a superadmin, and one sample record
// per entity. All existing data is dropped first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())
	log.Info("connected to MongoDB for seeding")

	database := client.Database(cfg.MongoDB)
	collections := []string{
		"users", "workshops", "clients", "appointments", "services",
		"invoices", "products", "stocks", "transactions", "suppliers",
	}
	for _, name := range collections {
		if err := database.Collection(name).Drop(ctx); err != nil {
			log.WithError(err).WithField("collection", name).Fatal("failed to drop collection")
		}
	}
	log.Info("existing data cleared")

	users := &db.MongoUserCollection{Collection: database.Collection("users")}
	workshops := &db.MongoWorkshopCollection{Collection: database.Collection("workshops")}
	clients := &db.MongoClientCollection{Collection: database.Collection("clients")}
	appointments := &db.MongoAppointmentCollection{Collection: database.Collection("appointments")}
	services := &db.MongoServiceCollection{Collection: database.Collection("services")}
	suppliers := &db.MongoSupplierCollection{Collection: database.Collection("suppliers")}
	products := &db.MongoProductCollection{Collection: database.Collection("products")}
	stocks := &db.MongoStockCollection{Collection: database.Collection("stocks")}
	invoices := &db.MongoInvoiceCollection{Collection: database.Collection("invoices")}
	transactions := &db.MongoTransactionCollection{Collection: database.Collection("transactions")}

	workshop, err := workshops.InsertWorkshop(ctx, models.Workshop{
		Name:    "Taller Central",
		Address: "Calle Principal 123",
		Contact: "555-1234",
	})
	fatalOn(err, "workshop")
	log.Info("workshop created")

	authService := auth.NewService(cfg.JWTSecret, cfg.TokenExpiry)
	passwordHash, err := authService.HashPassword("SuperSecurePassword!")
	fatalOn(err, "password hash")

	superAdmin, err := users.InsertUser(ctx, models.User{
		Name:         "Administrador Principal",
		Email:        "admin@tallercentral.com",
		Role:         models.RoleSuperadmin,
		PasswordHash: passwordHash,
		Workshop:     &workshop.ID,
	})
	fatalOn(err, "superadmin")
	log.Info("superadmin created")

	// Close the ownership loop now that the owner exists.
	_, err = workshops.UpdateWorkshop(ctx, workshop.ID.Hex(), models.WorkshopUpdate{Owner: &superAdmin.ID})
	fatalOn(err, "workshop owner")

	mechanicHash, err := authService.HashPassword("MechanicPassword!")
	fatalOn(err, "password hash")
	mechanic, err := users.InsertUser(ctx, models.User{
		Name:         "Pedro Gómez",
		Email:        "pedro.gomez@tallercentral.com",
		Role:         models.RoleMechanic,
		PasswordHash: mechanicHash,
		Workshop:     &workshop.ID,
	})
	fatalOn(err, "mechanic")

	customer, err := clients.InsertClient(ctx, models.Client{
		Name:           "Juan Pérez",
		Email:          "juan.perez@ejemplo.com",
		Phone:          "555-6789",
		ServiceHistory: []primitive.ObjectID{},
	})
	fatalOn(err, "client")
	log.Info("client created")

	service, err := services.InsertService(ctx, models.Service{
		Name:              "Cambio de aceite",
		Price:             49.90,
		EstimatedDuration: 45,
		Workshop:          &workshop.ID,
	})
	fatalOn(err, "service")

	supplier, err := suppliers.InsertSupplier(ctx, models.Supplier{
		Name:    "Repuestos del Norte",
		Contact: "ventas@repuestosnorte.com",
	})
	fatalOn(err, "supplier")

	product, err := products.InsertProduct(ctx, models.Product{
		Name:     "Filtro de aceite",
		Brand:    "Bosch",
		Supplier: supplier.ID,
	})
	fatalOn(err, "product")

	_, err = suppliers.UpdateSupplier(ctx, supplier.ID.Hex(), models.SupplierUpdate{
		SuppliedProducts: &[]primitive.ObjectID{product.ID},
	})
	fatalOn(err, "supplier products")

	_, err = stocks.InsertStock(ctx, models.Stock{
		Workshop: workshop.ID,
		Product:  product.ID,
		Supplier: supplier.ID,
		Quantity: 25,
	})
	fatalOn(err, "stock")

	appointment, err := appointments.InsertAppointment(ctx, models.Appointment{
		Client:   customer.ID,
		Workshop: workshop.ID,
		Service:  service.ID,
		Mechanic: mechanic.ID,
		Date:     time.Now().Add(48 * time.Hour),
		Status:   models.AppointmentPending,
	})
	fatalOn(err, "appointment")

	err = clients.AppendServiceHistory(ctx, customer.ID, appointment.ID)
	fatalOn(err, "service history")
	log.Info("appointment created")

	_, err = invoices.InsertInvoice(ctx, models.Invoice{
		Client:        customer.ID,
		Workshop:      workshop.ID,
		Total:         49.90,
		Date:          time.Now(),
		PaymentStatus: models.PaymentPending,
	})
	fatalOn(err, "invoice")

	_, err = transactions.InsertTransaction(ctx, models.Transaction{
		Workshop:    workshop.ID,
		Type:        models.TransactionExpense,
		Amount:      120.00,
		Date:        time.Now(),
		Description: "Compra de filtros de aceite",
	})
	fatalOn(err, "transaction")

	log.Info("database seeded")
}

func fatalOn(err error, what string) {
	if err != nil {
		log.WithError(err).WithField("record", what).Fatal("seeding failed")
	}
}
