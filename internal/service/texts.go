package service

// User-facing texts for the purchase flow.
const (
	textSelectRegion = "🌍 Выберите регион, в котором вам нужен интернет:"

	textSelectCountry = "Выберите страну или отправьте её название сообщением:"

	textNothingFound = "😔 Ничего не найдено. Проверьте название страны и попробуйте ещё раз."

	textLoadingPackages = "⏳ Загружаем тарифы для страны %s..."

	textNoPackages = "😔 Для страны %s сейчас нет доступных тарифов. Попробуйте выбрать другую страну."

	textChoosePackage = "📱 Тарифы для страны %s.\nПосуточные тарифы сверху, обычные — под разделителем:"

	textSelectDays = "📅 На сколько дней вам нужен тариф для страны %s?"

	textConfirmPurchase = "🛒 Подтвердите покупку:\n\n" +
		"Страна: %s\nТариф: %s\nОператоры: %s\n\n" +
		"Стоимость: %d₽ ($%.2f)"

	textProcessingPayment = "⏳ Обрабатываем платёж..."

	textPaymentSuccess = "✅ Оплата прошла успешно! Ваша eSIM оформляется."

	textPaymentError = "❌ Не удалось оформить заказ. Средства не списаны, попробуйте ещё раз."

	textGettingDetails = "⏳ Получаем данные вашей eSIM..."

	textEsimNotReady = "⏳ eSIM ещё готовится. Загляните в раздел «Профиль» через пару минут — заказ сохранён."

	textEsimDetails = "📱 Ваша eSIM готова!\n\n" +
		"ICCID: %s\nКод активации: %s\n\nQR-код для активации: %s\n\n" +
		"Отсканируйте QR-код или введите код активации в настройках устройства."

	textOperationCancelled = "Операция отменена."

	textPackageNotFound = "Ошибка: выбранный тариф не найден. Попробуйте снова."

	textProfileEmpty = "👤 Профиль\n\nУ вас пока нет активированных eSIM. Нажмите «Купить eSIM», чтобы приобрести новую."

	textProfileHeader = "👤 Профиль\n\nВаши eSIM:\n"

	textProfileEsimMissing = "eSIM не найдена. Возможно, она была удалена."

	textProfileEsimUnavailable = "Не удалось получить информацию об eSIM. Пожалуйста, попробуйте позже."

	textDefaultOperators = "Локальные операторы"

	toastUnknownRegion    = "Неизвестный регион"
	toastPackagesNotFound = "Пакеты не найдены"
	toastBadPackage       = "Ошибка выбора тарифа"
	toastBadDays          = "Ошибка выбора дней"
)
