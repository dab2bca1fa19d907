package server

// schemaSDL is the GraphQL schema served at /graphql
const schemaSDL = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	dataset(id: ID!): Dataset
	datasets: [Dataset!]!
}

type Mutation {
	createRecord(input: CreateRecordInput!): Record!
	updateRecord(input: UpdateRecordInput!): Record!
	deleteRecord(id: ID!): DeletedRecord!
}

type Program {
	name: String!
}

type Dataset {
	id: ID!
	name: String!
	program: Program!
	records: [Record!]!
}

type Record {
	id: ID!
	publicationDate: String!
	dataset: Dataset!
	entries: [Entry!]!
}

type Entry {
	id: ID!
	category: String!
	categoryValue: String!
	count: Int!
}

type DeletedRecord {
	id: ID!
}

input EntryInput {
	category: String!
	categoryValue: String!
	count: Int!
}

input CreateRecordInput {
	datasetId: ID!
	publicationDate: String!
	data: [EntryInput!]!
}

input UpdateRecordInput {
	id: ID
	publicationDate: String!
	data: [EntryInput!]!
}
`
