package constants

// Field names one of the canonical columns every supported table layout must
// resolve to.
type Field string

const (
	FieldItem        Field = "ITEM"
	FieldDescription Field = "DESCRIÇÃO"
	FieldUnit        Field = "UNID."
	FieldQuantity    Field = "QUANT."
	FieldUnitPrice   Field = "VALOR UNIT."
	FieldTotalPrice  Field = "VALOR TOTAL"
)

// Fields lists the canonical columns in their conventional table order.
var Fields = []Field{
	FieldItem,
	FieldDescription,
	FieldUnit,
	FieldQuantity,
	FieldUnitPrice,
	FieldTotalPrice,
}

// HeaderAliases maps each canonical field to the upper-cased substrings
// accepted as naming it in a header cell. The sets absorb the naming variation
// seen across source documents and are never mutated at runtime.
var HeaderAliases = map[Field][]string{
	FieldItem:        {"ITEM", "ITEN", "ITENS"},
	FieldDescription: {"DESCRIÇÃO", "DESCRICAO", "DESCRIÇÃO/ESPECIFICAÇÃO", "DESCRIÇÃO DO ITEM"},
	FieldUnit:        {"UNID.", "UNIDADE", "UND", "UNID"},
	FieldQuantity:    {"QUANT.", "QTD", "QUANTIDADE"},
	FieldUnitPrice:   {"VALOR UNIT.", "VALOR UNITARIO", "VALOR UNITÁRIO", "VLR UNIT.", "PREÇO UNIT.", "PREÇO UNIT"},
	FieldTotalPrice:  {"VALOR TOTAL", "VLR TOTAL", "TOTAL", "PREÇO TOTAL"},
}

// GrandTotalLabel is the text that, together with a parseable money value,
// marks the document's closing totals line.
const GrandTotalLabel = "VALOR TOTAL"
