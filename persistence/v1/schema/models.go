package schema

const schema = `CREATE TABLE IF NOT EXISTS notes (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	important INT NOT NULL,
	updatedAt TIMESTAMP,
	createdAt TIMESTAMP
)`

const dropSchema = `DROP TABLE notes`
