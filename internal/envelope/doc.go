// Package envelope собирает конверт для провайдера подписи из сгенерированных
// форм и клиентских PDF и сводит состояние конверта в прогресс подписантов.
//
// Все функции пакета работают только с данными одного запроса и не выполняют
// сетевых вызовов: получение PDF и координат полей выполняет сервисный слой.
package envelope
