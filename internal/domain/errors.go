package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrEmptyOperation: la operación quedó sin líneas después de filtrar
	// cantidades cero o negativas.
	ErrEmptyOperation = errors.New("operación sin líneas válidas")

	// ErrNotManufactured: se pidió producir o expandir receta de un producto
	// que no es de fabricación propia (tipo BEBIDA).
	ErrNotManufactured = errors.New("el producto no es de fabricación propia")

	// ErrNoRecipe: producto de fabricación propia sin líneas de receta, con la
	// producción sin receta deshabilitada por configuración.
	ErrNoRecipe = errors.New("el producto no tiene receta registrada")

	// ErrNotLocked: se intentó aplicar un delta de stock sin haber bloqueado
	// antes la fila dentro de la misma transacción.
	ErrNotLocked = errors.New("stock no bloqueado en esta transacción")

	// ErrLockTimeout: no se pudo adquirir el bloqueo de fila dentro del tiempo
	// límite configurado. El caller puede reintentar.
	ErrLockTimeout = errors.New("tiempo de espera agotado adquiriendo bloqueo de stock")

	// ErrSupplierCategory: el proveedor no puede vender ese tipo de línea
	// (INSUMOS solo insumos, BEBIDAS solo productos).
	ErrSupplierCategory = errors.New("categoría de proveedor incompatible con la línea de compra")
)
