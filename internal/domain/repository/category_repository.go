package repository

// CategoryRepository define el puerto de persistencia para la lista plana y
// ordenada de categorías. La unicidad se garantiza en Add/Rename; los
// productos que referencien una categoría eliminada conservan el texto libre.
type CategoryRepository interface {
	List() ([]string, error)
	Add(name string) error
	Rename(oldName, newName string) error
	Remove(name string) error
	Replace(names []string) error
}
