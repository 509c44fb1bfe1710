package normalizer

// Spreadsheet column names, as exported from the business registry.
const (
	ColumnPhones              = "telefone_completo"
	ColumnAddress             = "endereco_completo"
	ColumnNeighborhood        = "bairro"
	ColumnCity                = "municipio_nome"
	ColumnName                = "nome_fantasia"
	ColumnOwners              = "socios_nomes"
	ColumnCapital             = "capital_social"
	ColumnScore               = "Score"
	ColumnMicroEntrepreneur   = "opcao_mei"
	ColumnActivityDescription = "cnae_fiscal_descricao"
)

// NullText is what a null text cell turns into. Downstream heuristics look for it.
const (
	NullText = "nan"
	NoneText = "None"
)

var Columns = []string{
	ColumnPhones,
	ColumnAddress,
	ColumnNeighborhood,
	ColumnCity,
	ColumnName,
	ColumnOwners,
	ColumnCapital,
	ColumnScore,
	ColumnMicroEntrepreneur,
	ColumnActivityDescription,
}
