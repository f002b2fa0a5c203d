package datastore

const wineFields = `
fragment WineFields on Wine {
  id
  owner
  name
  producer
  vintage
  country
  region
  subRegion
  wineType
  variety
  blendComposition
  quantity
  bottleSize
  purchaseDate
  purchasePrice
  estimatedValue
  storageLocation
  tastingNotes
  criticsScores
  createdAt
  updatedAt
}`

const spiritFields = `
fragment SpiritFields on Spirit {
  id
  owner
  name
  producer
  type
  country
  region
  abv
  age
  vintageYear
  bottlingYear
  quantity
  purchaseDate
  purchasePrice
  estimatedValue
  storageLocation
  tastingNotes
  rating
  limitedEdition
  createdAt
  updatedAt
}`

// operation is a named GraphQL document sent by the client.
type operation struct {
	name     string
	document string
	// field is the root response field holding the result.
	field string
}

var (
	opListWines = operation{
		name:  "ListWines",
		field: "listWines",
		document: `query ListWines($limit: Int) {
  listWines(limit: $limit) { items { ...WineFields } }
}` + wineFields,
	}
	opGetWine = operation{
		name:  "GetWine",
		field: "getWine",
		document: `query GetWine($id: UUID!) {
  getWine(id: $id) { ...WineFields }
}` + wineFields,
	}
	opCreateWine = operation{
		name:  "CreateWine",
		field: "createWine",
		document: `mutation CreateWine($input: WineInput!) {
  createWine(input: $input) { ...WineFields }
}` + wineFields,
	}
	opDeleteWine = operation{
		name:     "DeleteWine",
		field:    "deleteWine",
		document: `mutation DeleteWine($id: UUID!) { deleteWine(id: $id) }`,
	}

	opListSpirits = operation{
		name:  "ListSpirits",
		field: "listSpirits",
		document: `query ListSpirits($limit: Int) {
  listSpirits(limit: $limit) { items { ...SpiritFields } }
}` + spiritFields,
	}
	opGetSpirit = operation{
		name:  "GetSpirit",
		field: "getSpirit",
		document: `query GetSpirit($id: UUID!) {
  getSpirit(id: $id) { ...SpiritFields }
}` + spiritFields,
	}
	opCreateSpirit = operation{
		name:  "CreateSpirit",
		field: "createSpirit",
		document: `mutation CreateSpirit($input: SpiritInput!) {
  createSpirit(input: $input) { ...SpiritFields }
}` + spiritFields,
	}
	opDeleteSpirit = operation{
		name:     "DeleteSpirit",
		field:    "deleteSpirit",
		document: `mutation DeleteSpirit($id: UUID!) { deleteSpirit(id: $id) }`,
	}
)

var allOperations = []operation{
	opListWines, opGetWine, opCreateWine, opDeleteWine,
	opListSpirits, opGetSpirit, opCreateSpirit, opDeleteSpirit,
}
