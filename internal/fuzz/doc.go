// Package fuzztests houses Go fuzz harnesses for the query pipeline
// (source -> lexer -> parser -> error rendering). Its goal is to guard
// against panics and hangs on arbitrary inputs.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер,
// парсер и рендеринг ошибок.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
