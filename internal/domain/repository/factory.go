package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Tables() TableRepository
	Orders() OrderRepository
	Products() ProductRepository
}
