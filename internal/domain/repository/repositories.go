package repository

// Repositories agrupa los repositorios atados a una misma transacción o snapshot.
type Repositories struct {
	Categories     CategoryRepository
	Products       ProductRepository
	Sellers        SellerRepository
	ProductSources ProductSourceRepository
}
